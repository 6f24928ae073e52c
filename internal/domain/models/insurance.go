package models

type InsurancePlan struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}

// InsurancePlans is the fixed per-trip cover catalogue.
var InsurancePlans = []InsurancePlan{
	{
		Code:  "basic",
		Name:  "Basic Coverage",
		Price: 50,
		Features: []string{
			"Personal accident coverage",
			"Loss of baggage",
			"24/7 emergency assistance",
		},
	},
	{
		Code:  "premium",
		Name:  "Premium Coverage",
		Price: 100,
		Features: []string{
			"All Basic Coverage features",
			"Medical expenses",
			"Trip cancellation",
			"Goods protection up to K5000",
		},
		Recommended: true,
	},
	{
		Code:  "business",
		Name:  "Business Coverage",
		Price: 200,
		Features: []string{
			"All Premium Coverage features",
			"Higher goods protection limit",
			"Business interruption coverage",
			"Priority claims processing",
		},
	},
}

// FindInsurancePlan looks a plan up by code or display name, case-insensitively.
func FindInsurancePlan(key string) (InsurancePlan, bool) {
	for _, p := range InsurancePlans {
		if equalFold(p.Code, key) || equalFold(p.Name, key) {
			return p, true
		}
	}
	return InsurancePlan{}, false
}
