package country

import "strings"

// fallbackCountries covers the CAF member nations most likely to register.
// Flags come from flagcdn, which serves the same assets restcountries links
// to, so the two sources render identically.
var fallbackCountries = map[string]string{
	"algeria":       "DZ",
	"angola":        "AO",
	"benin":         "BJ",
	"botswana":      "BW",
	"burkina faso":  "BF",
	"burundi":       "BI",
	"cameroon":      "CM",
	"cape verde":    "CV",
	"chad":          "TD",
	"comoros":       "KM",
	"congo":         "CG",
	"djibouti":      "DJ",
	"egypt":         "EG",
	"eritrea":       "ER",
	"eswatini":      "SZ",
	"ethiopia":      "ET",
	"gabon":         "GA",
	"gambia":        "GM",
	"ghana":         "GH",
	"guinea":        "GN",
	"guinea-bissau": "GW",
	"ivory coast":   "CI",
	"kenya":         "KE",
	"lesotho":       "LS",
	"liberia":       "LR",
	"libya":         "LY",
	"madagascar":    "MG",
	"malawi":        "MW",
	"mali":          "ML",
	"mauritania":    "MR",
	"mauritius":     "MU",
	"morocco":       "MA",
	"mozambique":    "MZ",
	"namibia":       "NA",
	"niger":         "NE",
	"nigeria":       "NG",
	"rwanda":        "RW",
	"senegal":       "SN",
	"seychelles":    "SC",
	"sierra leone":  "SL",
	"somalia":       "SO",
	"south africa":  "ZA",
	"south sudan":   "SS",
	"sudan":         "SD",
	"tanzania":      "TZ",
	"togo":          "TG",
	"tunisia":       "TN",
	"uganda":        "UG",
	"zambia":        "ZM",
	"zimbabwe":      "ZW",
}

var fallbackNamesByCode = func() map[string]string {
	names := make(map[string]string, len(fallbackCountries))
	for name, code := range fallbackCountries {
		names[strings.ToLower(code)] = name
	}
	return names
}()

func titleCase(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		parts := strings.Split(word, "-")
		for j, part := range parts {
			if part == "" {
				continue
			}
			parts[j] = strings.ToUpper(part[:1]) + part[1:]
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

// fallbackFlag resolves a lower-cased name or alpha-2 code from the built-in
// table.
func fallbackFlag(key string) (Flag, bool) {
	name := key
	code, ok := fallbackCountries[key]
	if !ok {
		name, ok = fallbackNamesByCode[key]
		if !ok {
			return Flag{}, false
		}
		code = strings.ToUpper(key)
	}

	display := titleCase(name)
	return Flag{
		Code:    code,
		Name:    display,
		FlagURL: "https://flagcdn.com/w320/" + strings.ToLower(code) + ".png",
		FlagAlt: display + " flag",
		Source:  SourceFallback,
	}, true
}
