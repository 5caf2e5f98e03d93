package site

const cssContent = `/* ============ Base ============ */
:root {
  --bg: #f6f4f0;
  --ink: #000;
  --accent: #a81712;
  --muted: #6b7280;
  --card: #fff;
  --gap: 24px;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--ink); font-family: "Helvetica Neue", Arial, sans-serif; font-size: 15px; }
a { color: inherit; }
img { display: block; max-width: 100%; }
h1, h2, h3 { font-family: Georgia, "Times New Roman", serif; font-weight: 400; }
main { padding-top: 96px; min-height: 70vh; }

/* ============ Navigation ============ */
.navbar { position: fixed; top: 0; left: 0; right: 0; z-index: 50; height: 96px; display: flex; align-items: center; justify-content: space-between; padding: 0 16px; background: var(--bg); box-shadow: 0 1px 2px rgba(0,0,0,.06); }
.burger svg { width: 24px; height: 24px; cursor: pointer; }
.logo { position: absolute; left: 50%; transform: translateX(-50%); text-decoration: none; font-size: 28px; letter-spacing: .15em; }
.cta { background: var(--ink); color: #fff; padding: 8px 24px; font-size: 13px; text-transform: uppercase; letter-spacing: .08em; text-decoration: none; }
.cta .short { display: none; }
.menu-overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.5); z-index: 40; }
.side-menu { position: fixed; top: 0; left: 0; height: 100%; width: 320px; background: var(--bg); z-index: 60; padding: 24px; transform: translateX(-100%); transition: transform .3s ease-in-out; }
.side-menu .close { display: block; text-align: right; font-size: 28px; cursor: pointer; }
.side-menu ul { list-style: none; padding: 0; margin: 32px 0 0; }
.side-menu li a { display: block; padding: 12px 0; font-size: 13px; font-weight: 300; text-transform: uppercase; letter-spacing: .08em; text-decoration: none; }
.side-menu li a:hover, .side-menu li a.active { color: var(--accent); }
.menu-toggle:checked ~ .menu-overlay { display: block; }
.menu-toggle:checked ~ .side-menu { transform: translateX(0); }

/* ============ Home ============ */
.hero img { width: 100%; height: 750px; object-fit: cover; }
.categories { display: grid; grid-template-columns: repeat(3, 1fr); }
.categories a { position: relative; overflow: hidden; }
.categories img { width: 100%; height: 100%; object-fit: cover; transition: transform .7s; }
.categories a:hover img { transform: scale(1.1); }
.categories span { position: absolute; left: 24px; bottom: 24px; color: #fff; font-size: 20px; font-weight: 300; text-transform: uppercase; letter-spacing: .08em; }
.section { max-width: 1200px; margin: 0 auto; padding: 80px 24px; }
.section h2 { text-align: center; font-size: 20px; }
.faq { max-width: 768px; }
.faq .subtitle { text-align: center; color: #374151; font-size: 13px; margin-bottom: 48px; }
.faq details { background: var(--card); border: 1px solid #e5e7eb; border-radius: 8px; margin-bottom: 16px; }
.faq summary { padding: 16px 24px; cursor: pointer; font-weight: 500; }
.faq details p { padding: 16px 24px; margin: 0; border-top: 1px solid #f3f4f6; color: #374151; }

/* ============ Carousel ============ */
.carousel { position: relative; display: flex; align-items: center; gap: 8px; }
.carousel-window { overflow: hidden; flex: 1; }
.carousel-track { display: flex; gap: var(--gap); }
.carousel.looping .carousel-track { display: block; position: relative; min-height: 420px; will-change: transform; }
.carousel.looping .carousel-slot { position: absolute; top: 0; }
.carousel-slot { flex: none; opacity: .85; transition: opacity .3s; }
.carousel-slot.emphasized { opacity: 1; }
.carousel-nav { font-size: 32px; text-decoration: none; padding: 8px 12px; background: var(--card); border-radius: 999px; box-shadow: 0 1px 3px rgba(0,0,0,.15); }
.carousel-nav[hidden] { display: none; }
.testimonial { margin: 0; background: var(--card); padding: 32px; border-radius: 8px; min-height: 220px; }
.testimonial blockquote { margin: 16px 0 0; line-height: 1.6; }
.stars .full, .stars .half { color: #d4a017; }
.stars .half { opacity: .5; }
.stars .empty { color: #d1d5db; }

/* ============ Products ============ */
.page { max-width: 1200px; margin: 0 auto; padding: 48px 24px; }
.page > h1 { text-align: center; font-size: 36px; margin-bottom: 16px; }
.intro { text-align: center; max-width: 640px; margin: 0 auto 48px; font-size: 13px; color: #4b5563; }
.grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 48px; }
.grid-card, .product-card { display: block; text-decoration: none; text-align: center; }
.product-image { position: relative; aspect-ratio: 3 / 4; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,.1); }
.product-image img { width: 100%; height: 100%; object-fit: cover; }
.unavailable { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; background: rgba(0,0,0,.6); color: #fff; font-weight: 600; }
.label { font-size: 12px; color: var(--muted); text-transform: uppercase; letter-spacing: .05em; }
.price { font-weight: 700; color: var(--accent); }
.empty { text-align: center; color: var(--muted); }
.filters { background: var(--card); padding: 24px; border-radius: 8px; margin-bottom: 32px; display: flex; flex-wrap: wrap; gap: 16px; }
.filters input { flex: 1; min-width: 200px; padding: 8px 12px; border: 1px solid #d1d5db; }
.types a { display: inline-block; padding: 6px 12px; margin: 2px; text-decoration: none; border: 1px solid #d1d5db; font-size: 13px; }
.types a.active { background: var(--ink); color: #fff; }
.detail-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 48px; margin-bottom: 64px; }
.detail .type { color: var(--accent); font-size: 18px; }
.detail h1 { font-size: 48px; margin: 8px 0 16px; }
.detail .price { font-size: 32px; }
.badge { font-size: 14px; padding: 4px 10px; border-radius: 999px; margin-left: 12px; font-weight: 400; }
.badge.ok { background: #dcfce7; color: #166534; }
.badge.ko { background: #fee2e2; color: #991b1b; }
.features { background: var(--card); border-radius: 8px; padding: 24px; margin: 32px 0; }
.features li { margin: 8px 0; }
.button { display: inline-block; background: var(--ink); color: #fff; padding: 12px 32px; text-decoration: none; text-transform: uppercase; font-size: 13px; letter-spacing: .08em; border: 0; cursor: pointer; }
.button.disabled { background: #9ca3af; cursor: default; }
.back a { color: var(--accent); }

/* ============ Contact & booking ============ */
.card { background: var(--card); border-radius: 8px; padding: 24px; margin-bottom: 32px; }
.preselected { border: 1px solid var(--ink); background: rgba(0,0,0,.05); padding: 24px; margin-bottom: 32px; font-size: 13px; }
.contact-info { display: grid; grid-template-columns: 1fr 1fr; gap: 32px; padding-top: 0; }
.social a { margin-right: 16px; }
.steps { display: flex; justify-content: center; gap: 32px; list-style: none; padding: 0; color: var(--muted); }
.steps li.done { color: var(--ink); font-weight: 500; }
.booking label { display: block; margin: 16px 0 4px; font-weight: 500; }
.booking input, .booking select, .booking textarea { display: block; width: 100%; margin-top: 4px; padding: 8px 12px; border: 1px solid #d1d5db; font: inherit; }
.booking fieldset { border: 0; padding: 0; margin: 0; }
.field-error { color: #b91c1c; font-size: 13px; }
.actions { display: flex; justify-content: space-between; margin-top: 24px; }
.actions button { background: var(--ink); color: #fff; border: 0; padding: 12px 32px; cursor: pointer; }
.actions button.secondary { background: #e5e7eb; color: var(--ink); }
.notice { color: #374151; }

/* ============ Content pages ============ */
.prose { max-width: 768px; line-height: 1.7; }
.prose h2 { margin-top: 40px; font-size: 22px; }

/* ============ Footer ============ */
.footer { border-top: 1px solid #e5e7eb; padding: 48px 16px 32px; text-align: center; }
.footer .brand { font-size: 24px; font-weight: 300; letter-spacing: .1em; }
.footer .credits { font-size: 12px; color: var(--muted); }
.footer .legal { font-size: 13px; }
.footer .legal a { text-decoration: none; }
.footer .legal a:hover { color: var(--accent); }

/* ============ Narrow viewports ============ */
@media (max-width: 768px) {
  main { padding-top: 80px; }
  .navbar { height: 80px; }
  .cta .short { display: inline; }
  .cta .long { display: none; }
  .cta { padding: 4px 8px; font-size: 11px; }
  .hero img { height: 400px; }
  .categories, .grid, .detail-grid, .contact-info { grid-template-columns: 1fr; }
}
`

const jsContent = `(function() {
  'use strict';

  function debounce(fn, ms) {
    var t;
    return function() {
      clearTimeout(t);
      t = setTimeout(fn, ms);
    };
  }

  // Live carousels: the server owns the state, the page only measures,
  // forwards input and draws the frames it receives.
  function live(root) {
    var path = root.getAttribute('data-live');
    if (!path || !window.WebSocket) return;

    var win = root.querySelector('.carousel-window');
    var track = root.querySelector('.carousel-track');
    var pool = root.querySelector('template.carousel-pool');
    var navs = root.querySelectorAll('.carousel-nav');
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + path);

    function send(ev) {
      if (ws.readyState === 1) ws.send(JSON.stringify(ev));
    }
    function measure() {
      send({type: 'resize', width: win.clientWidth, viewport: window.innerWidth});
    }

    function draw(f) {
      var width = f.geometry.item_width > 0 ? f.geometry.item_width + 'px' : 'auto';
      root.classList.toggle('looping', f.looping);
      navs.forEach(function(n) { n.hidden = !f.looping; });

      var frag = document.createDocumentFragment();
      f.slots.forEach(function(s) {
        var el = document.createElement('div');
        el.className = 'carousel-slot' + (s.emphasized ? ' emphasized' : '');
        el.setAttribute('data-logical', s.logical);
        el.style.width = width;
        if (f.looping) el.style.left = s.left + 'px';
        var card = pool && pool.content.querySelector('[data-logical="' + s.logical + '"]');
        if (card) el.appendChild(card.firstElementChild.cloneNode(true));
        frag.appendChild(el);
      });
      track.replaceChildren(frag);

      if (f.looping) {
        track.style.paddingLeft = '';
        track.style.transition = 'transform 0.5s ease-in-out';
        track.style.transform = 'translateX(' + f.offset + 'px)';
      } else {
        track.style.transition = '';
        track.style.transform = '';
        track.style.paddingLeft = f.padding_left + 'px';
      }
    }

    ws.onopen = measure;
    ws.onmessage = function(e) {
      var m = JSON.parse(e.data);
      if (m.type === 'frame') draw(m.frame);
    };
    window.addEventListener('resize', debounce(measure, 150));

    navs.forEach(function(n) {
      n.addEventListener('click', function(e) {
        if (ws.readyState !== 1) return;
        e.preventDefault();
        send({type: n.classList.contains('prev') ? 'retreat' : 'advance'});
      });
    });

    root.addEventListener('touchstart', function(e) {
      var onButton = !!e.target.closest('.carousel-nav');
      send({type: 'touchstart', x: e.touches[0].clientX, on_button: onButton});
    }, {passive: true});
    root.addEventListener('touchend', function(e) {
      send({type: 'touchend', x: e.changedTouches[0].clientX});
    });
  }

  document.querySelectorAll('.carousel[data-live]').forEach(live);
})();
`
