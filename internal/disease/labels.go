package disease

// Label is one of the fixed disease outcomes.
type Label struct {
	ID         string
	Name       string
	Confidence float64
	Remedy     string
}

// Labels is indexed by the pixel heuristic; order matters.
var Labels = [...]Label{
	{"healthy", "Healthy", 0.85, "No action needed. Maintain current practices."},
	{"leaf_spot", "Leaf Spot", 0.78, "Remove affected leaves; apply copper-based fungicide; avoid overhead irrigation."},
	{"blight", "Early/Late Blight", 0.72, "Apply fungicide; improve air circulation; rotate crops."},
	{"powdery_mildew", "Powdery Mildew", 0.75, "Sulphur spray or neem oil; reduce humidity."},
	{"rust", "Rust", 0.70, "Remove infected parts; apply sulphur or recommended fungicide."},
	{"yellowing", "Nutrient Deficiency / Yellowing", 0.68, "Soil test; apply balanced NPK and micronutrients."},
}

const (
	// rankedCount is how many labels appear in all_predictions.
	rankedCount = 4
	rankStep    = 0.1
	minRanked   = 0.1
)

const (
	PredictionUnknown = "unknown"
	PredictionError   = "error"
)
