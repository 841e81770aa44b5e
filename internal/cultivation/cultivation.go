// Package cultivation returns the eight-step production guide for a crop.
package cultivation

import (
	keys "agriai/pkg/platform/strings"
)

// StepCount is the length of every guide.
const StepCount = 8

// Step is one stage of a cultivation guide.
type Step struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	ImageHint   string `json:"image_hint"`
}

// override replaces the non-empty fields of the step with the same ordinal.
type override struct {
	Step        int
	Title       string
	Description string
	Duration    string
	ImageHint   string
}

var generic = [StepCount]Step{
	{1, "Land Preparation", "Plough the field 2-3 times, level the land, and add well-decomposed FYM or compost. Ensure proper drainage.", "1-2 weeks", "land_preparation"},
	{2, "Seed Selection & Treatment", "Choose certified seeds. Treat seeds with recommended fungicide/insecticide if needed. Soak if required for the crop.", "1-2 days", "seeds"},
	{3, "Sowing", "Sow at recommended spacing and depth. Follow row spacing and plant population for the variety.", "1-3 days", "sowing"},
	{4, "Irrigation", "Provide first irrigation at right time. Follow critical irrigation stages for the crop.", "Throughout", "irrigation"},
	{5, "Weed & Nutrient Management", "Apply recommended herbicides or manual weeding. Apply fertilizers in splits as per schedule.", "As per schedule", "fertilizer"},
	{6, "Pest & Disease Control", "Monitor for pests and diseases. Use IPM and recommended pesticides only when needed.", "As needed", "pest_control"},
	{7, "Harvesting", "Harvest at correct maturity. Use proper methods to avoid damage and post-harvest losses.", "1-2 weeks", "harvest"},
	{8, "Post-Harvest & Storage", "Dry, clean, and store in moisture-proof conditions. Follow safe storage practices.", "Ongoing", "storage"},
}

var overrides = map[string][]override{
	"rice": {
		{Step: 1, Title: "Puddling", Description: "Puddle the field and maintain standing water. Level for uniform water depth."},
	},
	"wheat": {
		{Step: 1, Title: "Seed Bed", Description: "Prepare fine tilth. Ensure moisture at sowing."},
	},
	"potato": {
		{Step: 2, Title: "Seed Tuber", Description: "Use disease-free cut tubers; treat with fungicide."},
	},
}

// Steps returns the guide for cropKey. Unknown and empty keys get the
// generic guide; the result always has StepCount steps in order.
func Steps(cropKey string) []Step {
	return apply(generic, overrides[keys.NormalizeKey(cropKey)])
}

func apply(base [StepCount]Step, ovs []override) []Step {
	steps := base
	for _, ov := range ovs {
		if ov.Step < 1 || ov.Step > StepCount {
			continue
		}
		s := &steps[ov.Step-1]
		if ov.Title != "" {
			s.Title = ov.Title
		}
		if ov.Description != "" {
			s.Description = ov.Description
		}
		if ov.Duration != "" {
			s.Duration = ov.Duration
		}
		if ov.ImageHint != "" {
			s.ImageHint = ov.ImageHint
		}
	}
	return steps[:]
}

// HasOverrides reports whether cropKey has a crop-specific guide.
func HasOverrides(cropKey string) bool {
	_, ok := overrides[keys.NormalizeKey(cropKey)]
	return ok
}
