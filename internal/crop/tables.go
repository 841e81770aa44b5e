package crop

// Season keys used when the requested season is unknown.
var defaultSeasons = []string{"kharif", "rabi"}

const defaultWater = "medium"

var soilTypes = map[string]string{
	"black":  "black_cotton",
	"red":    "red_loam",
	"brown":  "alluvial",
	"yellow": "laterite",
	"grey":   "saline",
}

var seasonCrops = map[string][]string{
	"kharif":  {"rice", "maize", "cotton", "sugarcane", "groundnut", "soybean", "pigeon_pea"},
	"rabi":    {"wheat", "barley", "mustard", "chickpea", "lentil", "potato", "onion"},
	"zaid":    {"cucumber", "watermelon", "muskmelon", "bitter_gourd", "pumpkin"},
	"monsoon": {"rice", "maize", "sorghum", "pearl_millet", "finger_millet"},
	"summer":  {"rice", "maize", "mung_bean", "black_gram", "cowpea"},
	"winter":  {"wheat", "mustard", "barley", "pea", "lentil"},
}

var waterCrops = map[string][]string{
	"high":   {"rice", "sugarcane", "banana", "coconut", "jute"},
	"medium": {"wheat", "maize", "cotton", "soybean", "groundnut", "chickpea"},
	"low":    {"millet", "sorghum", "barley", "lentil", "chickpea", "mustard"},
}

type familyEntry struct {
	key    string
	family string
}

// families is ordered; lookups scan it in this order.
var families = []familyEntry{
	{"rice", "poaceae"},
	{"wheat", "poaceae"},
	{"maize", "poaceae"},
	{"sorghum", "poaceae"},
	{"chickpea", "fabaceae"},
	{"lentil", "fabaceae"},
	{"soybean", "fabaceae"},
	{"groundnut", "fabaceae"},
	{"cotton", "malvaceae"},
	{"mustard", "brassicaceae"},
	{"potato", "solanaceae"},
	{"onion", "alliaceae"},
}

var familyKeys = func() []string {
	out := make([]string, len(families))
	for i, f := range families {
		out[i] = f.key
	}
	return out
}()

var fallback = []string{"wheat", "chickpea", "mustard", "lentil", "barley"}
