package content

// FAQ is one question of the home page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var FAQs = []FAQ{
	{
		Question: "Proposez-vous la location ou l’achat de tenues traditionnelles ?",
		Answer:   "Nous proposons les deux ! Vous pouvez choisir de louer une tenue traditionnelle pour une occasion ou d’en faire l’achat si vous souhaitez la conserver.",
	},
	{
		Question: "Quels sont les délais de location ?",
		Answer:   "Vous pouvez réserver un essayage directement via notre calendrier en ligne (page Contact) ou nous écrire sur nos réseaux sociaux (Instagram, TikTok, Facebook) ou par email. Nous fixerons ensemble le créneau qui vous convient le mieux.",
	},
	{
		Question: "Comment puis-je réserver un essayage ?",
		Answer:   "Vous pouvez réserver un essayage directement via notre calendrier en ligne (page Contact) ou nous écrire sur nos réseaux sociaux (Instagram, TikTok, Facebook) ou par email. Nous fixerons ensemble le créneau qui vous convient le mieux.",
	},
	{
		Question: "Proposez-vous les accessoires en location ?",
		Answer:   "Oui, nous proposons une option supplémentaire pour la location d’accessoires afin de compléter votre tenue. En revanche, les accessoires ne sont pas disponibles à la vente.",
	},
}
