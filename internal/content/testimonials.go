package content

// Testimonial is a customer review shown in the home page carousel.
type Testimonial struct {
	ID     int     `json:"id"`
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

// Stars splits the rating into full and half stars out of five.
func (t Testimonial) Stars() (full int, half bool, empty int) {
	full = int(t.Rating)
	half = t.Rating-float64(full) >= 0.5
	empty = 5 - full
	if half {
		empty--
	}
	if empty < 0 {
		empty = 0
	}
	return full, half, empty
}

// Testimonials are the reviews of the home page, in display order.
var Testimonials = []Testimonial{
	{
		ID:     1,
		Text:   "Première expérience de location et franchement au top ! Le Karakou était encore plus beau en vrai qu´en photo ✨",
		Rating: 5,
	},
	{
		ID:     2,
		Text:   "J´ai loué la Takchita SARAH pour mes fiançailles…une pure merveille🤍 Tout le monde m'a demandé d'où elle venait ! Merci pour ta disponibilité !",
		Rating: 5,
	},
	{
		ID:     3,
		Text:   "J'ai adoré la possibilité de choisir entre plusieurs bas, c'est top pour les femmes voilées !",
		Rating: 4.5,
	},
	{
		ID:     4,
		Text:   "Le caftan ESMA était incroyable pour mon évènement avec les bijoux qui vont avec en plus, très satisfaite !",
		Rating: 5,
	},
	{
		ID:     5,
		Text:   "Des modèles sublimes et un accueil très chaleureux 🥰",
		Rating: 5,
	},
	{
		ID:     6,
		Text:   "Le caftan (SELMA) était magnifique et à un prix abordable !",
		Rating: 4.5,
	},
}
