package site

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if eq .Title "Héritage"}}Héritage{{else}}{{.Title}} | Héritage{{end}}</title>
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<input type="checkbox" id="menu-toggle" class="menu-toggle" hidden>
<nav class="navbar">
  <label for="menu-toggle" class="burger" aria-label="Menu">
    <svg viewBox="0 0 24 24" fill="none" stroke="currentColor"><path stroke-linecap="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"/></svg>
  </label>
  <a href="/" class="logo">HÉRITAGE</a>
  <a href="/contact" class="cta"><span class="short">Essayage</span><span class="long">Réserver un essayage</span></a>
</nav>
<label for="menu-toggle" class="menu-overlay"></label>
<aside class="side-menu">
  <label for="menu-toggle" class="close" aria-label="Fermer">&times;</label>
  <ul>
  {{range .Nav}}<li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a></li>
  {{end}}</ul>
</aside>
<main>
{{end}}

{{define "foot"}}</main>
<footer class="footer">
  <div class="brand">HERITAGE</div>
  <p class="credits">Crédits © {{.Year}} - HERITAGE</p>
  <p class="legal"><a href="/mentions-legales">Mentions légales</a> | <a href="/conditions-vente">Conditions de vente</a></p>
</footer>
<script src="/static/site.js" defer></script>
</body>
</html>
{{end}}

{{define "product-card"}}
<a class="product-card" href="/robe/{{.ID}}">
  <div class="product-image">
    <img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy" decoding="async"{{with srcset .ImageURL}} srcset="{{.}}" sizes="{{sizes "3/4"}}"{{end}}>
    {{if not .Available}}<span class="unavailable">Indisponible</span>{{end}}
  </div>
  <h3>{{.Name}}</h3>
  <p class="price">{{formatPrice .Rental}}</p>
</a>
{{end}}

{{define "testimonial-card"}}
<figure class="testimonial">
  {{with stars .Rating}}<div class="stars" aria-label="{{$.Rating}} sur 5">{{range .Full}}<span class="star full">★</span>{{end}}{{if .Half}}<span class="star half">★</span>{{end}}{{range .Empty}}<span class="star empty">☆</span>{{end}}</div>{{end}}
  <blockquote>{{.Text}}</blockquote>
</figure>
{{end}}

{{define "carousel"}}{{$c := .}}
<div class="carousel{{if .Looping}} looping{{end}}" data-name="{{.Name}}"{{with .LiveURL}} data-live="{{.}}"{{end}}>
  <a class="carousel-nav prev" href="{{or .PrevURL "#"}}" aria-label="Précédent"{{if not .PrevURL}} hidden{{end}}>&#8249;</a>
  <div class="carousel-window">
    <div class="carousel-track" style="{{.Track}}">
    {{range .Frame.Slots}}<div class="carousel-slot{{if .Emphasized}} emphasized{{end}}" data-logical="{{.Logical}}" style="{{$c.SlotStyle .LeftCSS}}">
      {{if eq $c.Name "testimonials"}}{{template "testimonial-card" .Item}}{{else}}{{template "product-card" .Item}}{{end}}
    </div>
    {{end}}</div>
  </div>
  <a class="carousel-nav next" href="{{or .NextURL "#"}}" aria-label="Suivant"{{if not .NextURL}} hidden{{end}}>&#8250;</a>
  {{if .LiveURL}}<template class="carousel-pool">
  {{range $i, $it := .Items}}<div data-logical="{{$i}}">{{if eq $c.Name "testimonials"}}{{template "testimonial-card" $it}}{{else}}{{template "product-card" $it}}{{end}}</div>
  {{end}}</template>{{end}}
</div>
{{end}}

{{define "home"}}{{template "head" .}}{{with .Body}}
<section class="hero"><img src="/assets/products/accueil.webp" alt="Collection Héritage"></section>
<section class="categories">
  <a href="/catalogue"><img src="/assets/products/takchita-white.webp" alt="Takchita"><span>takchita</span></a>
  <a href="/tenues-algeriennes"><img src="/assets/products/karakou-black.webp" alt="Karakou"><span>Karakou</span></a>
  <a href="/catalogue"><img src="/assets/products/caftan-purple-2.webp" alt="Caftan"><span>Caftan</span></a>
</section>
<section class="section">
  <h2>Nos créations</h2>
  {{template "carousel" .Products}}
</section>
<section class="section">
  <h2>Ils nous ont fait confiance</h2>
  {{template "carousel" .Testimonials}}
</section>
<section class="section faq">
  <h2>FAQ</h2>
  <p class="subtitle">Questions fréquemment posées</p>
  {{range .FAQs}}<details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>
  {{end}}
</section>
{{end}}{{template "foot" .}}{{end}}

{{define "list"}}{{template "head" .}}{{with .Body}}
<section class="page">
  <h1>{{.Heading}}</h1>
  <p class="intro">{{.Intro}}</p>
  {{template "grid" .}}
</section>
{{end}}{{template "foot" .}}{{end}}

{{define "grid"}}{{$l := .}}
{{if .Products}}<div class="grid">
{{range .Products}}<a class="grid-card" href="{{$l.Detail}}{{.ID}}">
  <div class="product-image">
    <img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy" decoding="async"{{with srcset .ImageURL}} srcset="{{.}}" sizes="{{sizes "3/4"}}"{{end}}>
    {{if not .Available}}<span class="unavailable">Indisponible</span>{{end}}
  </div>
  <h3>{{.Name}}</h3>
  <div class="prices">
    <p><span class="label">Location</span> <span class="price">{{formatPrice .Rental}}</span></p>
    {{if and $l.Purchase .HasPurchase}}<p><span class="label">Achat</span> <span class="price">{{formatPrice .PurchasePrice.Decimal}}</span></p>{{end}}
  </div>
</a>
{{end}}</div>
{{else}}<p class="empty">{{.Empty}}</p>{{end}}
{{end}}

{{define "dresses"}}{{template "head" .}}{{with .Body}}
<section class="page">
  <h1>{{.Heading}}</h1>
  <p class="intro">{{.Intro}}</p>
  <form class="filters" method="get" action="/robes">
    <input type="search" name="q" value="{{.Query}}" placeholder="Rechercher une robe...">
    <div class="types">{{range .Filters}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}</div>
  </form>
  {{template "grid" .}}
</section>
{{end}}{{template "foot" .}}{{end}}

{{define "detail"}}{{template "head" .}}{{with .Body}}{{$p := .Product}}
<section class="page detail">
  <p class="back"><a href="{{.Back}}">&larr; Retour au catalogue</a></p>
  <div class="detail-grid">
    <div class="detail-image"><img src="{{$p.ImageURL}}" alt="{{$p.Name}}"{{with srcset $p.ImageURL}} srcset="{{.}}" sizes="{{sizes "3/4"}}"{{end}}></div>
    <div class="detail-info">
      <span class="type">{{dressTypeName $p.Type}}</span>
      <h1>{{$p.Name}}</h1>
      <p class="price">{{formatPrice $p.Rental}}
        {{if $p.Available}}<span class="badge ok">Disponible</span>{{else}}<span class="badge ko">Indisponible</span>{{end}}</p>
      <p class="description">{{$p.Description}}</p>
      <div class="features">
        <h3>Caractéristiques</h3>
        <ul>
          <li>Type: {{dressTypeName $p.Type}}</li>
          <li>Prix de location: {{formatPrice $p.Rental}}</li>
          {{if $p.HasPurchase}}<li>Prix d'achat: {{formatPrice $p.PurchasePrice.Decimal}}</li>{{end}}
          <li>{{if $p.Available}}Disponible immédiatement{{else}}Actuellement indisponible{{end}}</li>
          <li>Retouches possibles</li>
          <li>Nettoyage professionnel inclus</li>
        </ul>
      </div>
      {{if $p.Available}}<a class="button" href="/contact?robe={{$p.ID}}">Réserver un essayage</a>{{else}}<span class="button disabled">Actuellement indisponible</span>{{end}}
    </div>
  </div>
  {{if .HasSimilar}}<h2>Robes similaires</h2>
  {{template "carousel" .Similar}}{{end}}
</section>
{{end}}{{template "foot" .}}{{end}}

{{define "contact"}}{{template "head" .}}{{with .Body}}
<section class="page contact">
  <h1>Contact</h1>
  <p class="intro">Prenez rendez-vous pour un essayage ou contactez-nous pour toute question.</p>
  {{with .Selected}}<div class="preselected"><strong>Robe présélectionnée:</strong> {{.Name}} - {{dressTypeName .Type}} <a href="/reserver?robe={{.ID}}">Demander un rendez-vous</a></div>{{end}}
  <div class="card">
    <h2>Réserver un Essayage</h2>
    <p>Choisissez un créneau qui vous convient pour venir essayer nos créations.</p>
    <iframe src="{{.CalendlyURL}}" width="100%" height="600" frameborder="0" title="Calendly Scheduling"></iframe>
  </div>
</section>
{{end}}
<section class="page contact-info">
  <div class="card">
    <h2>Suivez-nous</h2>
    <p class="social">
      {{with .Contact.Instagram}}<a href="{{.}}" target="_blank" rel="noopener noreferrer">Instagram</a>{{end}}
      {{with .Contact.Facebook}}<a href="{{.}}" target="_blank" rel="noopener noreferrer">Facebook</a>{{end}}
      {{with .Contact.TikTok}}<a href="{{.}}" target="_blank" rel="noopener noreferrer">TikTok</a>{{end}}
    </p>
  </div>
  <div class="card">
    <h2>Informations</h2>
    <h3>Email</h3><p><a href="mailto:{{.Contact.Email}}">{{.Contact.Email}}</a></p>
    {{with .Contact.Phone}}<h3>Téléphone</h3><p>{{.}}</p>{{end}}
    <h3>Localisation</h3><p>{{.Contact.Location}}</p>
  </div>
</section>
{{template "foot" .}}{{end}}

{{define "field-error"}}{{with .}}<span class="field-error">{{.}}</span>{{end}}{{end}}

{{define "booking"}}{{template "head" .}}{{with .Body}}{{$b := .}}
<section class="page booking">
  <h1>Réserver un essayage</h1>
  <ol class="steps">{{range .Steps}}<li{{if ge $b.Step .}} class="done"{{end}}>{{stepLabel .}}</li>{{end}}</ol>
  {{with .Selected}}<div class="preselected"><strong>Robe présélectionnée:</strong> {{.Name}} - {{dressTypeName .Type}}</div>{{end}}
  {{if eq .Step 4}}
  <div class="card done">
    {{if .Scheduled}}<h2>Rendez-vous confirmé</h2>{{else}}<h2>Demande prête</h2><p class="notice">{{.Notice}}</p>{{end}}
    <p><a class="button" href="{{.CalendlyURL}}" target="_blank" rel="noopener noreferrer">Ouvrir le calendrier</a></p>
  </div>
  {{else}}
  <form method="post" action="/reserver" class="card" novalidate>
    <input type="hidden" name="step" value="{{.Step}}">
    <input type="hidden" name="dressId" value="{{.Request.DressID}}">
    <fieldset{{if ne .Step 1}} hidden{{end}}>
      <label>Nom complet *<input name="clientName" value="{{.Request.ClientName}}" placeholder="Votre nom"></label>
      {{template "field-error" index .Errors "clientName"}}
      <label>Email *<input type="email" name="clientEmail" value="{{.Request.ClientEmail}}" placeholder="votre@email.com"></label>
      {{template "field-error" index .Errors "clientEmail"}}
      <label>Téléphone *<input type="tel" name="clientPhone" value="{{.Request.ClientPhone}}" placeholder="+33 6 12 34 56 78"></label>
      {{template "field-error" index .Errors "clientPhone"}}
    </fieldset>
    <fieldset{{if ne .Step 2}} hidden{{end}}>
      <label>Date et heure du rendez-vous *<input type="datetime-local" name="appointmentDate" value="{{.Request.AppointmentDate}}" min="{{.MinDate}}"></label>
      {{template "field-error" index .Errors "appointmentDate"}}
    </fieldset>
    <fieldset{{if ne .Step 3}} hidden{{end}}>
      <label>Type de robe *<select name="dressType">
        <option value="">Sélectionnez un type</option>
        {{range .Types}}<option value="{{.}}"{{if eq . $b.Request.DressType}} selected{{end}}>{{dressTypeName .}}</option>{{end}}
      </select></label>
      {{template "field-error" index .Errors "dressType"}}
      <label>Notes (optionnel)<textarea name="notes" placeholder="Informations supplémentaires (taille, préférences, événement...)">{{.Request.Notes}}</textarea></label>
    </fieldset>
    <div class="actions">
      {{if gt .Step 1}}<button type="submit" name="action" value="back" class="secondary">Précédent</button>{{end}}
      {{if lt .Step 3}}<button type="submit" name="action" value="next">Suivant</button>{{else}}<button type="submit" name="action" value="submit">Confirmer</button>{{end}}
    </div>
  </form>
  {{end}}
</section>
{{end}}{{template "foot" .}}{{end}}

{{define "content"}}{{template "head" .}}{{with .Body}}
<article class="page prose">
  <h1>{{.Page.Title}}</h1>
  {{.Page.HTML}}
</article>
{{end}}{{template "foot" .}}{{end}}

{{define "notfound"}}{{template "head" .}}{{with .Body}}
<section class="page notfound">
  <h1>{{.Heading}}</h1>
  <p>La page que vous cherchez n'existe pas ou n'est plus disponible.</p>
  <p><a class="button" href="/robes">Retour au catalogue</a></p>
</section>
{{end}}{{template "foot" .}}{{end}}
`
