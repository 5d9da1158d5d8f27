package forms

import (
	"strconv"
	"time"
)

// GenderChoices варианты поля "gender" анкеты пользователя.
var GenderChoices = []Option{
	{Value: "m", Name: "Male"},
	{Value: "f", Name: "Female"},
	{Value: "o", Name: "Other/Prefer Not to Say"},
}

// LevelOfEducationChoices варианты поля "level_of_education".
var LevelOfEducationChoices = []Option{
	{Value: "p", Name: "Doctorate"},
	{Value: "m", Name: "Master's or professional degree"},
	{Value: "b", Name: "Bachelor's degree"},
	{Value: "a", Name: "Associate degree"},
	{Value: "hs", Name: "Secondary/high school"},
	{Value: "jhs", Name: "Junior secondary/junior high/middle school"},
	{Value: "el", Name: "Elementary/primary school"},
	{Value: "none", Name: "No formal education"},
	{Value: "other", Name: "Other education"},
}

// maxUserAge определяет глубину списка годов рождения.
const maxUserAge = 120

// YearOfBirthOptions возвращает варианты поля "year_of_birth":
// от текущего года вниз на maxUserAge лет.
func YearOfBirthOptions() []Option {
	current := time.Now().Year()
	options := make([]Option, 0, maxUserAge+1)
	for year := current; year >= current-maxUserAge; year-- {
		s := strconv.Itoa(year)
		options = append(options, Option{Value: s, Name: s})
	}
	return options
}

// CountryChoices варианты поля "country": код ISO 3166-1 alpha-2 и название.
var CountryChoices = []Option{
	{Value: "AF", Name: "Afghanistan"},
	{Value: "AL", Name: "Albania"},
	{Value: "DZ", Name: "Algeria"},
	{Value: "AD", Name: "Andorra"},
	{Value: "AO", Name: "Angola"},
	{Value: "AR", Name: "Argentina"},
	{Value: "AM", Name: "Armenia"},
	{Value: "AU", Name: "Australia"},
	{Value: "AT", Name: "Austria"},
	{Value: "AZ", Name: "Azerbaijan"},
	{Value: "BH", Name: "Bahrain"},
	{Value: "BD", Name: "Bangladesh"},
	{Value: "BY", Name: "Belarus"},
	{Value: "BE", Name: "Belgium"},
	{Value: "BJ", Name: "Benin"},
	{Value: "BO", Name: "Bolivia"},
	{Value: "BA", Name: "Bosnia and Herzegovina"},
	{Value: "BW", Name: "Botswana"},
	{Value: "BR", Name: "Brazil"},
	{Value: "BG", Name: "Bulgaria"},
	{Value: "BF", Name: "Burkina Faso"},
	{Value: "KH", Name: "Cambodia"},
	{Value: "CM", Name: "Cameroon"},
	{Value: "CA", Name: "Canada"},
	{Value: "CL", Name: "Chile"},
	{Value: "CN", Name: "China"},
	{Value: "CO", Name: "Colombia"},
	{Value: "CD", Name: "Congo (the Democratic Republic of the)"},
	{Value: "CR", Name: "Costa Rica"},
	{Value: "CI", Name: "Côte d'Ivoire"},
	{Value: "HR", Name: "Croatia"},
	{Value: "CU", Name: "Cuba"},
	{Value: "CY", Name: "Cyprus"},
	{Value: "CZ", Name: "Czechia"},
	{Value: "DK", Name: "Denmark"},
	{Value: "DO", Name: "Dominican Republic"},
	{Value: "EC", Name: "Ecuador"},
	{Value: "EG", Name: "Egypt"},
	{Value: "SV", Name: "El Salvador"},
	{Value: "EE", Name: "Estonia"},
	{Value: "ET", Name: "Ethiopia"},
	{Value: "FI", Name: "Finland"},
	{Value: "FR", Name: "France"},
	{Value: "GE", Name: "Georgia"},
	{Value: "DE", Name: "Germany"},
	{Value: "GH", Name: "Ghana"},
	{Value: "GR", Name: "Greece"},
	{Value: "GT", Name: "Guatemala"},
	{Value: "HN", Name: "Honduras"},
	{Value: "HK", Name: "Hong Kong"},
	{Value: "HU", Name: "Hungary"},
	{Value: "IS", Name: "Iceland"},
	{Value: "IN", Name: "India"},
	{Value: "ID", Name: "Indonesia"},
	{Value: "IR", Name: "Iran"},
	{Value: "IQ", Name: "Iraq"},
	{Value: "IE", Name: "Ireland"},
	{Value: "IL", Name: "Israel"},
	{Value: "IT", Name: "Italy"},
	{Value: "JM", Name: "Jamaica"},
	{Value: "JP", Name: "Japan"},
	{Value: "JO", Name: "Jordan"},
	{Value: "KZ", Name: "Kazakhstan"},
	{Value: "KE", Name: "Kenya"},
	{Value: "KR", Name: "Korea (the Republic of)"},
	{Value: "KW", Name: "Kuwait"},
	{Value: "KG", Name: "Kyrgyzstan"},
	{Value: "LV", Name: "Latvia"},
	{Value: "LB", Name: "Lebanon"},
	{Value: "LT", Name: "Lithuania"},
	{Value: "LU", Name: "Luxembourg"},
	{Value: "MY", Name: "Malaysia"},
	{Value: "MT", Name: "Malta"},
	{Value: "MX", Name: "Mexico"},
	{Value: "MD", Name: "Moldova"},
	{Value: "MN", Name: "Mongolia"},
	{Value: "ME", Name: "Montenegro"},
	{Value: "MA", Name: "Morocco"},
	{Value: "MZ", Name: "Mozambique"},
	{Value: "MM", Name: "Myanmar"},
	{Value: "NP", Name: "Nepal"},
	{Value: "NL", Name: "Netherlands"},
	{Value: "NZ", Name: "New Zealand"},
	{Value: "NI", Name: "Nicaragua"},
	{Value: "NG", Name: "Nigeria"},
	{Value: "MK", Name: "North Macedonia"},
	{Value: "NO", Name: "Norway"},
	{Value: "OM", Name: "Oman"},
	{Value: "PK", Name: "Pakistan"},
	{Value: "PA", Name: "Panama"},
	{Value: "PY", Name: "Paraguay"},
	{Value: "PE", Name: "Peru"},
	{Value: "PH", Name: "Philippines"},
	{Value: "PL", Name: "Poland"},
	{Value: "PT", Name: "Portugal"},
	{Value: "QA", Name: "Qatar"},
	{Value: "RO", Name: "Romania"},
	{Value: "RU", Name: "Russian Federation"},
	{Value: "RW", Name: "Rwanda"},
	{Value: "SA", Name: "Saudi Arabia"},
	{Value: "SN", Name: "Senegal"},
	{Value: "RS", Name: "Serbia"},
	{Value: "SG", Name: "Singapore"},
	{Value: "SK", Name: "Slovakia"},
	{Value: "SI", Name: "Slovenia"},
	{Value: "ZA", Name: "South Africa"},
	{Value: "ES", Name: "Spain"},
	{Value: "LK", Name: "Sri Lanka"},
	{Value: "SD", Name: "Sudan"},
	{Value: "SE", Name: "Sweden"},
	{Value: "CH", Name: "Switzerland"},
	{Value: "SY", Name: "Syrian Arab Republic"},
	{Value: "TW", Name: "Taiwan"},
	{Value: "TJ", Name: "Tajikistan"},
	{Value: "TZ", Name: "Tanzania"},
	{Value: "TH", Name: "Thailand"},
	{Value: "TN", Name: "Tunisia"},
	{Value: "TR", Name: "Türkiye"},
	{Value: "TM", Name: "Turkmenistan"},
	{Value: "UG", Name: "Uganda"},
	{Value: "UA", Name: "Ukraine"},
	{Value: "AE", Name: "United Arab Emirates"},
	{Value: "GB", Name: "United Kingdom"},
	{Value: "US", Name: "United States of America"},
	{Value: "UY", Name: "Uruguay"},
	{Value: "UZ", Name: "Uzbekistan"},
	{Value: "VE", Name: "Venezuela"},
	{Value: "VN", Name: "Viet Nam"},
	{Value: "YE", Name: "Yemen"},
	{Value: "ZM", Name: "Zambia"},
	{Value: "ZW", Name: "Zimbabwe"},
}
