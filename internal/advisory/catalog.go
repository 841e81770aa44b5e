package advisory

import "slices"

// DefaultFeature is used when a sample-image request names no known feature.
const DefaultFeature = "crops"

const imageHost = "https://images.unsplash.com"

func placeholder(photo string) string {
	return imageHost + "/" + photo + "?w=400"
}

// sampleImages holds placeholder illustrations for each UI feature.
var sampleImages = map[string][]string{
	"crops": {
		placeholder("photo-1574943320219-553eb213f72d"),
		placeholder("photo-1500382017468-9049fed747ef"),
	},
	"diseases": {
		placeholder("photo-1597848212624-a19eb35e2651"),
		placeholder("photo-1416879595882-3373a0480b5b"),
	},
	"fertilizers": {placeholder("photo-1416879595882-3373a0480b5b")},
	"soil":        {placeholder("photo-1416879595882-3373a0480b5b")},
	"cultivation": {
		placeholder("photo-1500382017468-9049fed747ef"),
		placeholder("photo-1574943320219-553eb213f72d"),
	},
	"delivery": {placeholder("photo-1566576912321-d58ddd7a5938")},
}

// SampleImages returns the placeholder URLs for feature and whether feature
// was known. Unknown features get the crops images.
func SampleImages(feature string) ([]string, bool) {
	if urls, ok := sampleImages[feature]; ok {
		return slices.Clone(urls), true
	}
	return slices.Clone(sampleImages[DefaultFeature]), false
}
