package knowledge

// countryTable is the static knowledge base. Croatia is declared first and is
// the pipeline's default guess. Keep airports ordered by prominence: the first
// entry is the country's main airport.
var countryTable = []Country{
	{
		Name:   "Croatia",
		Codes:  []string{"HR", "HRV"},
		Cities: []string{"ZAGREB", "SPLIT", "DUBROVNIK", "ZADAR", "RIJEKA", "PULA", "OSIJEK"},
		Airports: []Airport{
			{Name: "Franjo Tudman Airport Zagreb", Tokens: []string{"ZAG", "ZAGREB", "FRANJO", "PLESO"}},
			{Name: "Split Airport", Tokens: []string{"SPU", "SPLIT", "RESNIK"}},
			{Name: "Dubrovnik Airport", Tokens: []string{"DBV", "DUBROVNIK", "CILIPI"}},
			{Name: "Zadar Airport", Tokens: []string{"ZAD", "ZADAR", "ZEMUNIK"}},
			{Name: "Pula Airport", Tokens: []string{"PUY", "PULA"}},
		},
	},
	{
		Name:   "Slovenia",
		Codes:  []string{"SI", "SVN"},
		Cities: []string{"LJUBLJANA", "MARIBOR", "KOPER"},
		Airports: []Airport{
			{Name: "Ljubljana Joze Pucnik Airport", Tokens: []string{"LJU", "LJUBLJANA", "BRNIK"}},
			{Name: "Maribor Edvard Rusjan Airport", Tokens: []string{"MBX", "MARIBOR"}},
		},
	},
	{
		Name:   "Serbia",
		Codes:  []string{"RS", "SRB"},
		Cities: []string{"BEOGRAD", "BELGRADE", "NOVI SAD", "NIS"},
		Airports: []Airport{
			{Name: "Belgrade Nikola Tesla Airport", Tokens: []string{"BEG", "BEOGRAD", "BELGRADE", "SURCIN"}},
			{Name: "Nis Constantine the Great Airport", Tokens: []string{"INI", "NIS"}},
		},
	},
	{
		Name:   "Bosnia and Herzegovina",
		Codes:  []string{"BA", "BIH"},
		Cities: []string{"SARAJEVO", "MOSTAR", "BANJA LUKA", "TUZLA"},
		Airports: []Airport{
			{Name: "Sarajevo Airport", Tokens: []string{"SJJ", "SARAJEVO", "BUTMIR"}},
			{Name: "Mostar Airport", Tokens: []string{"OMO", "MOSTAR"}},
		},
	},
	{
		Name:   "Hungary",
		Codes:  []string{"HU", "HUN"},
		Cities: []string{"BUDAPEST", "DEBRECEN"},
		Airports: []Airport{
			{Name: "Budapest Ferenc Liszt Airport", Tokens: []string{"BUD", "BUDAPEST", "FERIHEGY"}},
			{Name: "Debrecen Airport", Tokens: []string{"DEB", "DEBRECEN"}},
		},
	},
	{
		Name:   "Austria",
		Codes:  []string{"AT", "AUT"},
		Cities: []string{"WIEN", "VIENNA", "GRAZ", "SALZBURG", "INNSBRUCK"},
		Airports: []Airport{
			{Name: "Vienna Schwechat Airport", Tokens: []string{"VIE", "WIEN", "VIENNA", "SCHWECHAT"}},
			{Name: "Salzburg Airport", Tokens: []string{"SZG", "SALZBURG"}},
			{Name: "Graz Airport", Tokens: []string{"GRZ", "GRAZ"}},
		},
	},
	{
		Name:   "Germany",
		Codes:  []string{"DE", "DEU"},
		Cities: []string{"BERLIN", "FRANKFURT", "MUNCHEN", "MUNICH", "HAMBURG", "KOLN", "DUSSELDORF"},
		Airports: []Airport{
			{Name: "Frankfurt Airport", Tokens: []string{"FRA", "FRANKFURT"}},
			{Name: "Munich Airport", Tokens: []string{"MUC", "MUNCHEN", "MUNICH"}},
			{Name: "Berlin Brandenburg Airport", Tokens: []string{"BER", "BERLIN", "BRANDENBURG"}},
			{Name: "Hamburg Airport", Tokens: []string{"HAM", "HAMBURG"}},
		},
	},
	{
		Name:   "Italy",
		Codes:  []string{"IT", "ITA"},
		Cities: []string{"ROMA", "ROME", "MILANO", "MILAN", "VENEZIA", "VENICE", "NAPOLI"},
		Airports: []Airport{
			{Name: "Rome Fiumicino Airport", Tokens: []string{"FCO", "FIUMICINO", "ROMA", "ROME"}},
			{Name: "Milan Malpensa Airport", Tokens: []string{"MXP", "MALPENSA", "MILANO", "MILAN"}},
			{Name: "Venice Marco Polo Airport", Tokens: []string{"VCE", "VENEZIA", "VENICE", "MARCO POLO"}},
		},
	},
	{
		Name:   "France",
		Codes:  []string{"FR", "FRA"},
		Cities: []string{"PARIS", "LYON", "MARSEILLE", "NICE", "TOULOUSE"},
		Airports: []Airport{
			{Name: "Paris Charles de Gaulle Airport", Tokens: []string{"CDG", "ROISSY", "CHARLES DE GAULLE"}},
			{Name: "Paris Orly Airport", Tokens: []string{"ORY", "ORLY"}},
			{Name: "Nice Cote d'Azur Airport", Tokens: []string{"NCE", "NICE"}},
		},
	},
	{
		Name:   "Spain",
		Codes:  []string{"ES", "ESP"},
		Cities: []string{"MADRID", "BARCELONA", "VALENCIA", "SEVILLA", "MALAGA"},
		Airports: []Airport{
			{Name: "Madrid Barajas Airport", Tokens: []string{"MAD", "BARAJAS", "MADRID"}},
			{Name: "Barcelona El Prat Airport", Tokens: []string{"BCN", "EL PRAT", "BARCELONA"}},
		},
	},
	{
		Name:   "United Kingdom",
		Codes:  []string{"GB", "UK", "GBR"},
		Cities: []string{"LONDON", "MANCHESTER", "EDINBURGH", "BIRMINGHAM"},
		Airports: []Airport{
			{Name: "London Heathrow Airport", Tokens: []string{"LHR", "HEATHROW"}},
			{Name: "London Gatwick Airport", Tokens: []string{"LGW", "GATWICK"}},
			{Name: "Manchester Airport", Tokens: []string{"MAN", "MANCHESTER"}},
		},
	},
	{
		Name:   "Switzerland",
		Codes:  []string{"CH", "CHE"},
		Cities: []string{"ZURICH", "GENEVA", "GENEVE", "BASEL", "BERN"},
		Airports: []Airport{
			{Name: "Zurich Airport", Tokens: []string{"ZRH", "ZURICH", "KLOTEN"}},
			{Name: "Geneva Airport", Tokens: []string{"GVA", "GENEVA", "GENEVE", "COINTRIN"}},
		},
	},
	{
		Name:   "Greece",
		Codes:  []string{"GR", "GRC"},
		Cities: []string{"ATHENS", "ATHINA", "THESSALONIKI", "HERAKLION"},
		Airports: []Airport{
			{Name: "Athens Eleftherios Venizelos Airport", Tokens: []string{"ATH", "ATHENS", "VENIZELOS"}},
			{Name: "Thessaloniki Makedonia Airport", Tokens: []string{"SKG", "THESSALONIKI", "MAKEDONIA"}},
		},
	},
	{
		Name:   "Turkey",
		Codes:  []string{"TR", "TUR"},
		Cities: []string{"ISTANBUL", "ANKARA", "IZMIR", "ANTALYA"},
		Airports: []Airport{
			{Name: "Istanbul Airport", Tokens: []string{"IST", "ISTANBUL"}},
			{Name: "Istanbul Sabiha Gokcen Airport", Tokens: []string{"SAW", "SABIHA", "GOKCEN"}},
			{Name: "Antalya Airport", Tokens: []string{"AYT", "ANTALYA"}},
		},
	},
	{
		Name:   "United States",
		Codes:  []string{"US", "USA"},
		Cities: []string{"NEW YORK", "LOS ANGELES", "CHICAGO", "MIAMI", "SAN FRANCISCO", "BOSTON"},
		Airports: []Airport{
			{Name: "John F Kennedy International Airport", Tokens: []string{"JFK", "KENNEDY", "NEW YORK"}},
			{Name: "Los Angeles International Airport", Tokens: []string{"LAX", "LOS ANGELES"}},
			{Name: "Chicago O'Hare International Airport", Tokens: []string{"ORD", "OHARE", "CHICAGO"}},
			{Name: "Miami International Airport", Tokens: []string{"MIA", "MIAMI"}},
		},
	},
	{
		Name:   "United Arab Emirates",
		Codes:  []string{"AE", "ARE"},
		Cities: []string{"DUBAI", "ABU DHABI", "SHARJAH"},
		Airports: []Airport{
			{Name: "Dubai International Airport", Tokens: []string{"DXB", "DUBAI"}},
			{Name: "Abu Dhabi International Airport", Tokens: []string{"AUH", "ABU DHABI"}},
		},
	},
	{
		Name:   "India",
		Codes:  []string{"IN", "IND"},
		Cities: []string{"DELHI", "MUMBAI", "BANGALORE", "BENGALURU", "CHENNAI", "KOLKATA", "HYDERABAD"},
		Airports: []Airport{
			{Name: "Indira Gandhi International Airport", Tokens: []string{"DEL", "DELHI", "INDIRA GANDHI"}},
			{Name: "Chhatrapati Shivaji Maharaj International Airport", Tokens: []string{"BOM", "MUMBAI", "SHIVAJI"}},
			{Name: "Kempegowda International Airport", Tokens: []string{"BLR", "BANGALORE", "BENGALURU", "KEMPEGOWDA"}},
			{Name: "Chennai International Airport", Tokens: []string{"MAA", "CHENNAI"}},
		},
	},
	{
		Name:   "Singapore",
		Codes:  []string{"SG", "SGP"},
		Cities: []string{"SINGAPORE"},
		Airports: []Airport{
			{Name: "Singapore Changi Airport", Tokens: []string{"SIN", "CHANGI"}},
		},
	},
	{
		Name:   "Japan",
		Codes:  []string{"JP", "JPN"},
		Cities: []string{"TOKYO", "OSAKA", "NAGOYA", "FUKUOKA"},
		Airports: []Airport{
			{Name: "Tokyo Narita International Airport", Tokens: []string{"NRT", "NARITA"}},
			{Name: "Tokyo Haneda Airport", Tokens: []string{"HND", "HANEDA"}},
			{Name: "Kansai International Airport", Tokens: []string{"KIX", "KANSAI", "OSAKA"}},
		},
	},
}
