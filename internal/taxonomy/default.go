package taxonomy

// Default returns the built-in education taxonomy. Terms are kept lower-case
// and umlaut-free to match the plain-text form most German feeds use.
func Default() *Taxonomy {
	return New([]Category{
		{Name: "digitalisierung", Terms: []string{
			"digitalisierung", "digital", "edtech", "lernplattform", "e-learning", "online-lernen",
		}},
		{Name: "ki_bildung", Terms: []string{
			"ki", "kuenstliche intelligenz", "chatgpt", "ai", "machine learning", "algorithmen",
			"ki-tools", "automatisierung",
		}},
		{Name: "inklusion", Terms: []string{
			"inklusion", "integration", "diversitaet", "chancengleichheit", "barrierefrei", "teilhabe",
		}},
		{Name: "hochschule", Terms: []string{
			"universitaet", "hochschule", "studium", "forschung", "bachelor", "master", "promotion",
		}},
		{Name: "berufsbildung", Terms: []string{
			"ausbildung", "berufsschule", "duales system", "lehre", "azubi", "berufliche bildung",
		}},
		{Name: "erwachsenenbildung", Terms: []string{
			"volkshochschule", "vhs", "weiterbildung", "erwachsenenbildung", "keb",
			"evangelische bildung", "lebenslanges lernen", "fortbildung", "fernstudium", "bildungsurlaub",
		}},
		{Name: "forschung_eb", Terms: []string{
			"erwachsenenbildungsforschung", "bildungsforschung", "paedagogische forschung", "didaktik",
			"lernforschung", "empirische bildungsforschung", "bildungswissenschaft",
		}},
		{Name: "nachhaltigkeit", Terms: []string{
			"nachhaltigkeit", "klimaschutz", "umweltbildung", "bne", "bildung nachhaltige entwicklung",
			"oekologie", "klimawandel", "ressourcen", "agenda 2030", "17 ziele",
		}},
		{Name: "interreligioser_dialog", Terms: []string{
			"interreligioes", "dialog der religionen", "oekumene", "religionen", "weltreligionen",
			"interkulturelles", "religionsuebergreifend", "abrahamitische religionen", "toleranz",
		}},
		{Name: "foerdermittel", Terms: []string{
			"foerderung", "foerdermittel", "finanzierung", "zuschuss", "projektfoerderung",
			"bildungsfoerderung", "eu-foerderung", "bundesmittel", "landesfoerderung", "stiftung",
			"erasmus", "antrag",
		}},
		{Name: "spiritualitaet", Terms: []string{
			"spiritualitaet", "meditation", "achtsamkeit", "kontemplation", "exerzitien",
			"geistliches leben", "besinnung", "innere entwicklung", "sinnfragen", "lebenskunst",
		}},
		{Name: "familienbildung", Terms: []string{
			"familienbildung", "elternbildung", "erziehung", "familien", "eltern-kind",
			"familienstaette", "elternkurs", "paarberatung", "familienzentrum", "muetter", "vaeter",
		}},
		{Name: "maennerarbeit", Terms: []string{
			"maennerarbeit", "maennerbildung", "vaeterbildung", "maennlichkeit", "gender male",
			"maennergruppe", "vaetergruppe", "new masculinity",
		}},
		{Name: "frauenarbeit", Terms: []string{
			"frauenbildung", "frauenarbeit", "gender", "gleichstellung", "empowerment frauen",
			"frauengruppe", "feminismus", "maedchenarbeit", "women empowerment",
		}},
		{Name: "seniorenarbeit", Terms: []string{
			"seniorenbildung", "altenbildung", "senioren", "alter", "generationen", "lebensaeltere",
			"altersbildung", "50plus", "rentenalter", "demografie", "generationengerechtigkeit",
		}},
	})
}
