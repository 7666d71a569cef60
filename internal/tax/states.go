package tax

// stateNames maps the two-digit GSTIN state code to the state or union
// territory name, per the GST state code master (37 entries).
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"97": "Other Territory",
}

// KnownStateCode reports whether code is a valid GSTIN state code.
func KnownStateCode(code string) bool {
	_, ok := stateNames[code]
	return ok
}

// StateName returns the state name for a GSTIN state code, or "" if unknown.
func StateName(code string) string {
	return stateNames[code]
}

// StateCodeFromGSTIN extracts the two-digit state code prefix of a GSTIN.
// Returns "" when the GSTIN is too short or the prefix is not a known code,
// so callers can treat the jurisdiction as unresolved.
func StateCodeFromGSTIN(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	code := gstin[:2]
	if !KnownStateCode(code) {
		return ""
	}
	return code
}
