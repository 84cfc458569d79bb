package prompt

import "strings"

// DefaultLocale is used for unknown or empty locales.
const DefaultLocale = "fr"

type phrases struct {
	language string

	base        string // duration, name, country
	respondIn   string // language
	datesFrom   string
	datesTo     string
	travelType  string
	travelTypes map[string]string
	theme       string
	style       string
	budget      string
	preferred   string
	avoid       string
	intensity   string
	actBudget   string
	access      string
	handicap    string
	children    string
	pets        string
	restType    string
	mealBudget  string
	dietary     string
	ambiance    string
	transport   string
	maxDistance string
	prefTime    string
	weather     string
	closing     string
	expert      string
}

var locales = map[string]phrases{
	"fr": {
		language:   "français",
		base:       "Crée un programme de voyage détaillé de %d jours pour %s (%s).",
		respondIn:  " Rédige tous les textes du programme en %s.",
		datesFrom:  " Dates: du %s",
		datesTo:    " au %s",
		travelType: " Type de voyage: %s.",
		travelTypes: map[string]string{
			"familial":   "voyage en famille",
			"romantique": "voyage romantique",
			"entre-amis": "voyage entre amis",
			"solo":       "voyage solo",
			"business":   "voyage d'affaires",
		},
		theme:       " Thème: %s.",
		style:       " Style de voyage: %s.",
		budget:      " Budget global: %s.",
		preferred:   " Activités préférées: %s.",
		avoid:       " Activités à éviter: %s.",
		intensity:   " Niveau d'intensité: %s.",
		actBudget:   " Budget par activité: %s.",
		access:      " Accessibilité: %s.",
		handicap:    "accessibilité handicap",
		children:    "adapté aux enfants",
		pets:        "animaux acceptés",
		restType:    " Type de restaurants: %s.",
		mealBudget:  " Budget par repas: %s.",
		dietary:     " Préférences alimentaires: %s.",
		ambiance:    " Ambiance restaurant: %s.",
		transport:   " Transport préféré: %s.",
		maxDistance: " Distance maximale entre activités: %skm.",
		prefTime:    " Horaires préférés: %s.",
		weather:     " Météo préférée: %s.",
		closing:     " Inclus des activités variées, des restaurants recommandés, et des conseils pratiques pour chaque jour.",
		expert:      "Tu es un expert en planification de voyages. Génère des programmes de voyage détaillés au format JSON avec cette structure :",
	},
	"en": {
		language:   "English",
		base:       "Create a detailed %d-day travel itinerary for %s (%s).",
		respondIn:  " Write every text field of the itinerary in %s.",
		datesFrom:  " Dates: from %s",
		datesTo:    " to %s",
		travelType: " Trip type: %s.",
		travelTypes: map[string]string{
			"familial":   "family trip",
			"romantique": "romantic trip",
			"entre-amis": "trip with friends",
			"solo":       "solo trip",
			"business":   "business trip",
		},
		theme:       " Theme: %s.",
		style:       " Travel style: %s.",
		budget:      " Overall budget: %s.",
		preferred:   " Preferred activities: %s.",
		avoid:       " Activities to avoid: %s.",
		intensity:   " Intensity level: %s.",
		actBudget:   " Budget per activity: %s.",
		access:      " Accessibility: %s.",
		handicap:    "wheelchair accessible",
		children:    "suitable for children",
		pets:        "pets allowed",
		restType:    " Restaurant types: %s.",
		mealBudget:  " Budget per meal: %s.",
		dietary:     " Dietary preferences: %s.",
		ambiance:    " Restaurant ambiance: %s.",
		transport:   " Preferred transport: %s.",
		maxDistance: " Maximum distance between activities: %skm.",
		prefTime:    " Preferred times: %s.",
		weather:     " Preferred weather: %s.",
		closing:     " Include varied activities, recommended restaurants, and practical tips for each day.",
		expert:      "You are a travel planning expert. Generate detailed travel itineraries as JSON with this structure:",
	},
	"es": {
		language:   "español",
		base:       "Crea un itinerario de viaje detallado de %d días para %s (%s).",
		respondIn:  " Redacta todos los textos del itinerario en %s.",
		datesFrom:  " Fechas: del %s",
		datesTo:    " al %s",
		travelType: " Tipo de viaje: %s.",
		travelTypes: map[string]string{
			"familial":   "viaje en familia",
			"romantique": "viaje romántico",
			"entre-amis": "viaje con amigos",
			"solo":       "viaje en solitario",
			"business":   "viaje de negocios",
		},
		theme:       " Tema: %s.",
		style:       " Estilo de viaje: %s.",
		budget:      " Presupuesto global: %s.",
		preferred:   " Actividades preferidas: %s.",
		avoid:       " Actividades a evitar: %s.",
		intensity:   " Nivel de intensidad: %s.",
		actBudget:   " Presupuesto por actividad: %s.",
		access:      " Accesibilidad: %s.",
		handicap:    "accesible en silla de ruedas",
		children:    "apto para niños",
		pets:        "se admiten mascotas",
		restType:    " Tipo de restaurantes: %s.",
		mealBudget:  " Presupuesto por comida: %s.",
		dietary:     " Preferencias alimentarias: %s.",
		ambiance:    " Ambiente del restaurante: %s.",
		transport:   " Transporte preferido: %s.",
		maxDistance: " Distancia máxima entre actividades: %skm.",
		prefTime:    " Horarios preferidos: %s.",
		weather:     " Clima preferido: %s.",
		closing:     " Incluye actividades variadas, restaurantes recomendados y consejos prácticos para cada día.",
		expert:      "Eres un experto en planificación de viajes. Genera itinerarios de viaje detallados en formato JSON con esta estructura:",
	},
	"de": {
		language:   "Deutsch",
		base:       "Erstelle einen detaillierten %d-tägigen Reiseplan für %s (%s).",
		respondIn:  " Verfasse alle Texte des Reiseplans auf %s.",
		datesFrom:  " Daten: vom %s",
		datesTo:    " bis %s",
		travelType: " Reiseart: %s.",
		travelTypes: map[string]string{
			"familial":   "Familienreise",
			"romantique": "romantische Reise",
			"entre-amis": "Reise mit Freunden",
			"solo":       "Alleinreise",
			"business":   "Geschäftsreise",
		},
		theme:       " Thema: %s.",
		style:       " Reisestil: %s.",
		budget:      " Gesamtbudget: %s.",
		preferred:   " Bevorzugte Aktivitäten: %s.",
		avoid:       " Zu vermeidende Aktivitäten: %s.",
		intensity:   " Intensität: %s.",
		actBudget:   " Budget pro Aktivität: %s.",
		access:      " Barrierefreiheit: %s.",
		handicap:    "rollstuhlgerecht",
		children:    "kinderfreundlich",
		pets:        "Haustiere erlaubt",
		restType:    " Restaurantarten: %s.",
		mealBudget:  " Budget pro Mahlzeit: %s.",
		dietary:     " Ernährungsvorlieben: %s.",
		ambiance:    " Restaurantatmosphäre: %s.",
		transport:   " Bevorzugte Verkehrsmittel: %s.",
		maxDistance: " Maximale Entfernung zwischen Aktivitäten: %skm.",
		prefTime:    " Bevorzugte Zeiten: %s.",
		weather:     " Bevorzugtes Wetter: %s.",
		closing:     " Plane abwechslungsreiche Aktivitäten, empfohlene Restaurants und praktische Tipps für jeden Tag ein.",
		expert:      "Du bist ein Experte für Reiseplanung. Erstelle detaillierte Reisepläne im JSON-Format mit dieser Struktur:",
	},
	"it": {
		language:   "italiano",
		base:       "Crea un itinerario di viaggio dettagliato di %d giorni per %s (%s).",
		respondIn:  " Scrivi tutti i testi dell'itinerario in %s.",
		datesFrom:  " Date: dal %s",
		datesTo:    " al %s",
		travelType: " Tipo di viaggio: %s.",
		travelTypes: map[string]string{
			"familial":   "viaggio in famiglia",
			"romantique": "viaggio romantico",
			"entre-amis": "viaggio tra amici",
			"solo":       "viaggio da solo",
			"business":   "viaggio di lavoro",
		},
		theme:       " Tema: %s.",
		style:       " Stile di viaggio: %s.",
		budget:      " Budget complessivo: %s.",
		preferred:   " Attività preferite: %s.",
		avoid:       " Attività da evitare: %s.",
		intensity:   " Livello di intensità: %s.",
		actBudget:   " Budget per attività: %s.",
		access:      " Accessibilità: %s.",
		handicap:    "accessibile in sedia a rotelle",
		children:    "adatto ai bambini",
		pets:        "animali ammessi",
		restType:    " Tipi di ristoranti: %s.",
		mealBudget:  " Budget per pasto: %s.",
		dietary:     " Preferenze alimentari: %s.",
		ambiance:    " Atmosfera del ristorante: %s.",
		transport:   " Trasporti preferiti: %s.",
		maxDistance: " Distanza massima tra le attività: %skm.",
		prefTime:    " Orari preferiti: %s.",
		weather:     " Clima preferito: %s.",
		closing:     " Includi attività varie, ristoranti consigliati e consigli pratici per ogni giorno.",
		expert:      "Sei un esperto di pianificazione di viaggi. Genera itinerari di viaggio dettagliati in formato JSON con questa struttura:",
	},
	"pt": {
		language:   "português",
		base:       "Crie um roteiro de viagem detalhado de %d dias para %s (%s).",
		respondIn:  " Escreva todos os textos do roteiro em %s.",
		datesFrom:  " Datas: de %s",
		datesTo:    " a %s",
		travelType: " Tipo de viagem: %s.",
		travelTypes: map[string]string{
			"familial":   "viagem em família",
			"romantique": "viagem romântica",
			"entre-amis": "viagem com amigos",
			"solo":       "viagem sozinho",
			"business":   "viagem de negócios",
		},
		theme:       " Tema: %s.",
		style:       " Estilo de viagem: %s.",
		budget:      " Orçamento total: %s.",
		preferred:   " Atividades preferidas: %s.",
		avoid:       " Atividades a evitar: %s.",
		intensity:   " Nível de intensidade: %s.",
		actBudget:   " Orçamento por atividade: %s.",
		access:      " Acessibilidade: %s.",
		handicap:    "acessível para cadeira de rodas",
		children:    "adequado para crianças",
		pets:        "animais permitidos",
		restType:    " Tipos de restaurantes: %s.",
		mealBudget:  " Orçamento por refeição: %s.",
		dietary:     " Preferências alimentares: %s.",
		ambiance:    " Ambiente do restaurante: %s.",
		transport:   " Transporte preferido: %s.",
		maxDistance: " Distância máxima entre atividades: %skm.",
		prefTime:    " Horários preferidos: %s.",
		weather:     " Clima preferido: %s.",
		closing:     " Inclua atividades variadas, restaurantes recomendados e dicas práticas para cada dia.",
		expert:      "Você é um especialista em planejamento de viagens. Gere roteiros de viagem detalhados em formato JSON com esta estrutura:",
	},
}

// ResolveLocale maps a requested locale ("en", "en-US", "EN") to a supported
// one, or DefaultLocale.
func ResolveLocale(locale string) string {
	l := locale
	if len(l) > 2 {
		l = l[:2]
	}
	l = strings.ToLower(l)
	if _, ok := locales[l]; ok {
		return l
	}
	return DefaultLocale
}

// Locales lists the supported locale codes.
func Locales() []string {
	return []string{"fr", "en", "es", "de", "it", "pt"}
}
