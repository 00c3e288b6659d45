// Package catalog holds the built-in medicine list shipped with the service.
// Entries are created at build time and never mutated; every id stays below
// models.SyntheticIDThreshold.
package catalog

import (
	"pharmacy-server/models"
)

var products = []models.Product{
	{
		ID:          1,
		Name:        "Dolo 650",
		Description: "Paracetamol tablet for fever and mild to moderate pain relief.",
		Image:       "https://image.pollinations.ai/prompt/Dolo%20650%20paracetamol%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Fever & Pain Relief",
		Composition: "Paracetamol 650mg",
		Usage:       "Take one tablet every 4-6 hours after food. Do not exceed 4 tablets in 24 hours.",
		SideEffects: "Rare at recommended doses. May cause nausea or skin rash in sensitive individuals.",
		Precautions: []string{
			"Avoid alcohol while taking this medicine",
			"Consult a doctor if fever persists beyond 3 days",
			"Not recommended with other paracetamol-containing products",
		},
	},
	{
		ID:          2,
		Name:        "Crocin Advance",
		Description: "Fast-acting paracetamol for headache, body ache and fever.",
		Image:       "https://image.pollinations.ai/prompt/Crocin%20Advance%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Fever & Pain Relief",
		Composition: "Paracetamol 500mg",
		Usage:       "Take 1-2 tablets every 4-6 hours as needed.",
		SideEffects: "Generally well tolerated at recommended doses.",
		Precautions: []string{
			"Do not combine with other paracetamol products",
			"Keep out of reach of children",
		},
	},
	{
		ID:          3,
		Name:        "Benadryl Cough Syrup",
		Description: "Cough syrup for relief from dry cough, wet cough and throat irritation.",
		Image:       "https://image.pollinations.ai/prompt/Benadryl%20cough%20syrup%20bottle%20pharmacy%20product%20photo",
		Category:    "Cough & Cold",
		Composition: "Diphenhydramine 14.08mg, Ammonium Chloride 138mg per 5ml",
		Usage:       "Adults: 10ml every 4 hours. Children over 6: 5ml every 4 hours.",
		SideEffects: "May cause drowsiness. Avoid driving after taking a dose.",
		Precautions: []string{
			"Avoid alcohol",
			"Not for children under 6 years",
		},
	},
	{
		ID:          4,
		Name:        "Cetrizine 10mg",
		Description: "Antihistamine tablet for allergy relief, sneezing, runny nose and hives.",
		Image:       "https://image.pollinations.ai/prompt/Cetrizine%20antihistamine%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Allergy",
		Composition: "Cetirizine Hydrochloride 10mg",
		Usage:       "One tablet once daily, preferably at night.",
		SideEffects: "Mild drowsiness, dry mouth.",
		Precautions: []string{
			"Use caution while driving",
			"Consult a doctor if pregnant or breastfeeding",
		},
	},
	{
		ID:          5,
		Name:        "Digene Gel",
		Description: "Antacid gel for acidity, gas, heartburn and stomach discomfort.",
		Image:       "https://image.pollinations.ai/prompt/Digene%20antacid%20gel%20bottle%20mint%20flavour%20pharmacy%20product%20photo",
		Category:    "Digestive Health",
		Composition: "Magnesium Hydroxide, Aluminium Hydroxide, Simethicone",
		Usage:       "Take 2 teaspoons after meals or as directed by physician.",
		SideEffects: "Occasional constipation or diarrhoea with prolonged use.",
		Precautions: []string{
			"Consult a doctor if symptoms persist beyond 2 weeks",
		},
	},
	{
		ID:          6,
		Name:        "Volini Spray",
		Description: "Pain relief spray for sprains, muscle pain, joint pain and back pain.",
		Image:       "https://image.pollinations.ai/prompt/Volini%20pain%20relief%20spray%20can%20pharmacy%20product%20photo",
		Category:    "Pain Relief",
		Composition: "Diclofenac Diethylamine 1.16% w/w",
		Usage:       "Spray on the affected area 3-4 times a day.",
		SideEffects: "Mild skin irritation in some users.",
		Precautions: []string{
			"For external use only",
			"Do not apply on broken skin",
		},
	},
	{
		ID:          7,
		Name:        "Azithral 500",
		Description: "Azithromycin antibiotic for bacterial infections of the respiratory tract, skin and ear.",
		Image:       "https://image.pollinations.ai/prompt/Azithral%20500%20azithromycin%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Antibiotics",
		Composition: "Azithromycin 500mg",
		Usage:       "One tablet daily for 3-5 days, exactly as prescribed.",
		SideEffects: "Nausea, abdominal pain, diarrhoea.",
		Precautions: []string{
			"Complete the full prescribed course",
			"Take only under medical supervision",
		},
		IsPrescriptionRequired: true,
	},
	{
		ID:          8,
		Name:        "Pantocid 40",
		Description: "Pantoprazole tablet for acid reflux, GERD and peptic ulcer.",
		Image:       "https://image.pollinations.ai/prompt/Pantocid%2040%20pantoprazole%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Digestive Health",
		Composition: "Pantoprazole 40mg",
		Usage:       "One tablet before breakfast on an empty stomach.",
		SideEffects: "Headache, flatulence, dizziness.",
		Precautions: []string{
			"Long-term use only under medical advice",
		},
		IsPrescriptionRequired: true,
	},
	{
		ID:          9,
		Name:        "Otrivin Nasal Spray",
		Description: "Decongestant nasal spray for blocked nose due to cold and sinusitis.",
		Image:       "https://image.pollinations.ai/prompt/Otrivin%20nasal%20spray%20bottle%20pharmacy%20product%20photo",
		Category:    "Cough & Cold",
		Composition: "Xylometazoline Hydrochloride 0.1%",
		Usage:       "One spray in each nostril 2-3 times daily. Do not use beyond 7 days.",
		SideEffects: "Nasal dryness or burning sensation.",
		Precautions: []string{
			"Prolonged use can cause rebound congestion",
		},
	},
	{
		ID:          10,
		Name:        "Shelcal 500",
		Description: "Calcium and vitamin D3 supplement for bone health.",
		Image:       "https://image.pollinations.ai/prompt/Shelcal%20500%20calcium%20vitamin%20D3%20tablet%20bottle%20pharmacy%20product%20photo",
		Category:    "Vitamins & Supplements",
		Composition: "Calcium Carbonate 500mg, Vitamin D3 250 IU",
		Usage:       "One tablet daily after a meal.",
		SideEffects: "Constipation or bloating in some users.",
		Precautions: []string{
			"Avoid taking with iron supplements at the same time",
		},
	},
	{
		ID:          11,
		Name:        "Betadine Ointment",
		Description: "Povidone-iodine antiseptic ointment for cuts, wounds and minor burns.",
		Image:       "https://image.pollinations.ai/prompt/Betadine%20antiseptic%20ointment%20tube%20pharmacy%20product%20photo",
		Category:    "First Aid",
		Composition: "Povidone Iodine 5% w/w",
		Usage:       "Apply a thin layer on the affected area 1-2 times daily.",
		SideEffects: "Mild local irritation.",
		Precautions: []string{
			"Avoid in case of iodine allergy",
			"For external use only",
		},
	},
	{
		ID:          12,
		Name:        "Electral Powder",
		Description: "Oral rehydration salts for dehydration due to diarrhoea, vomiting or heat.",
		Image:       "https://image.pollinations.ai/prompt/Electral%20ORS%20powder%20sachet%20pharmacy%20product%20photo",
		Category:    "Digestive Health",
		Composition: "WHO-recommended ORS formula",
		Usage:       "Dissolve one sachet in one litre of clean drinking water. Sip frequently.",
		SideEffects: "None at recommended dilution.",
		Precautions: []string{
			"Discard the prepared solution after 24 hours",
		},
	},
	{
		ID:          13,
		Name:        "Allegra 120",
		Description: "Fexofenadine tablet for non-drowsy relief from seasonal allergies.",
		Image:       "https://image.pollinations.ai/prompt/Allegra%20120%20fexofenadine%20tablet%20strip%20pharmacy%20product%20photo",
		Category:    "Allergy",
		Composition: "Fexofenadine Hydrochloride 120mg",
		Usage:       "One tablet once daily with water.",
		SideEffects: "Headache, mild nausea.",
		Precautions: []string{
			"Avoid taking with fruit juice",
		},
	},
	{
		ID:          14,
		Name:        "Omez 20",
		Description: "Omeprazole capsule for acidity and gastric ulcer.",
		Image:       "https://image.pollinations.ai/prompt/Omez%2020%20omeprazole%20capsule%20strip%20pharmacy%20product%20photo",
		Category:    "Digestive Health",
		Composition: "Omeprazole 20mg",
		Usage:       "One capsule daily before food.",
		SideEffects: "Headache, stomach pain, loose stools.",
		Precautions: []string{
			"Inform your doctor about other ongoing medicines",
		},
	},
	{
		ID:          15,
		Name:        "Revital H",
		Description: "Daily multivitamin with minerals and ginseng for energy and immunity.",
		Image:       "https://image.pollinations.ai/prompt/Revital%20H%20multivitamin%20capsule%20bottle%20pharmacy%20product%20photo",
		Category:    "Vitamins & Supplements",
		Composition: "Multivitamins, Minerals, Natural Ginseng",
		Usage:       "One capsule daily after breakfast.",
		SideEffects: "Generally well tolerated.",
		Precautions: []string{
			"Not a substitute for a balanced diet",
		},
	},
	{
		ID:          16,
		Name:        "Dettol Antiseptic Liquid",
		Description: "Antiseptic disinfectant liquid for first aid, personal hygiene and surface cleaning.",
		Image:       "https://image.pollinations.ai/prompt/Dettol%20antiseptic%20liquid%20bottle%20pharmacy%20product%20photo",
		Category:    "First Aid",
		Composition: "Chloroxylenol 4.8% w/v",
		Usage:       "Dilute as directed before use on skin or surfaces.",
		SideEffects: "Skin irritation if used undiluted.",
		Precautions: []string{
			"Do not swallow",
			"Keep away from eyes",
		},
	},
}

func init() {
	for i := range products {
		products[i].Source = models.ProductSourceCatalog
	}
}

// All returns the full catalog. Callers must treat the slice as read-only.
func All() []models.Product {
	return products
}

// FindByID returns the catalog product with the given id, or nil.
func FindByID(id int64) *models.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
