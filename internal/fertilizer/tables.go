package fertilizer

type entry struct {
	key   string
	items []string
}

var defaultBase = []string{"Urea", "DAP", "MOP", "Compost"}

// cropTable is scanned in order; see lookup for how ties resolve.
var cropTable = []entry{
	{"rice", []string{"Urea", "DAP", "MOP", "Zinc Sulphate", "Farmyard Manure"}},
	{"wheat", []string{"Urea", "DAP", "MOP", "Gypsum", "Compost"}},
	{"maize", []string{"Urea", "DAP", "MOP", "Zinc", "Vermicompost"}},
	{"cotton", []string{"Urea", "DAP", "MOP", "Sulphur", "Boron"}},
	{"sugarcane", []string{"Urea", "SSP", "MOP", "Gypsum", "Press Mud"}},
	{"chickpea", []string{"Rhizobium", "DAP", "MOP", "Gypsum", "Compost"}},
	{"mustard", []string{"Urea", "DAP", "MOP", "Boron", "Sulphur"}},
	{"potato", []string{"Urea", "DAP", "MOP", "Magnesium", "Compost"}},
	{"tomato", []string{"Urea", "DAP", "MOP", "Calcium Nitrate", "Vermicompost"}},
	{"onion", []string{"Urea", "DAP", "MOP", "Sulphur", "Compost"}},
	{"groundnut", []string{"Rhizobium", "Gypsum", "DAP", "Boron", "Compost"}},
	{"soybean", []string{"Rhizobium", "DAP", "MOP", "Zinc", "Compost"}},
	{"millet", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"sorghum", []string{"Urea", "DAP", "MOP", "Zinc", "Compost"}},
	{"barley", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"lentil", []string{"Rhizobium", "DAP", "MOP", "Gypsum", "Compost"}},
	{"pea", []string{"Rhizobium", "DAP", "MOP", "Compost"}},
	{"pigeon_pea", []string{"Rhizobium", "DAP", "MOP", "Gypsum", "Compost"}},
	{"mung_bean", []string{"Rhizobium", "DAP", "MOP", "Compost"}},
	{"black_gram", []string{"Rhizobium", "DAP", "MOP", "Compost"}},
	{"cowpea", []string{"Rhizobium", "DAP", "MOP", "Compost"}},
	{"cucumber", []string{"Urea", "DAP", "MOP", "Vermicompost"}},
	{"watermelon", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"pumpkin", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"banana", []string{"Urea", "MOP", "Compost", "Magnesium"}},
	{"coconut", []string{"Urea", "MOP", "Boron", "Compost"}},
	{"jute", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"finger_millet", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"pearl_millet", []string{"Urea", "DAP", "MOP", "Compost"}},
	{"bitter_gourd", []string{"Urea", "DAP", "MOP", "Vermicompost"}},
	{"muskmelon", []string{"Urea", "DAP", "MOP", "Compost"}},
}

var diseaseTable = []entry{
	{"leaf_spot", []string{"Potassium", "Neem-based foliar", "Compost tea"}},
	{"blight", []string{"Phosphorus", "Copper-based fungicide", "Compost"}},
	{"rust", []string{"Sulphur", "Potassium", "Compost"}},
	{"powdery_mildew", []string{"Sulphur", "Potassium", "Neem oil"}},
	{"root_rot", []string{"Trichoderma", "Compost", "Reduce nitrogen"}},
	{"deficiency", []string{"NPK balance", "Micronutrients", "Compost"}},
	{"healthy", []string{}},
}
