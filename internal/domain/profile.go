package domain

// Profile is a cuisine style used to bias ingredient selection.
type Profile string

// ProfileChaos disables the cuisine constraint entirely.
const ProfileChaos Profile = "chaos"

const (
	ProfileComfort       Profile = "comfort"
	ProfileAmerican      Profile = "american"
	ProfileMexican       Profile = "mexican"
	ProfileItalian       Profile = "italian"
	ProfileAsian         Profile = "asian"
	ProfileCajun         Profile = "cajun"
	ProfileBBQ           Profile = "bbq"
	ProfileMediterranean Profile = "mediterranean"
	ProfileEasternEuro   Profile = "eastern-euro"
	ProfileBreakfast     Profile = "breakfast"
)

// NameSuffix is appended to every generated recipe name.
const NameSuffix = " Casserole"

// ProfileInfo holds the display metadata and name phrases of a profile.
type ProfileInfo struct {
	Key   Profile
	Label string
	Icon  string
	Names []string
}

// Profiles is the fixed set of real (non-chaos) cuisine profiles.
var Profiles = []ProfileInfo{
	{ProfileComfort, "Classic Comfort", "🏠", []string{
		"Grandma's", "Church Potluck", "Cozy Night", "Sunday Supper", "Hometown", "Farmhouse", "Heartwarming",
	}},
	{ProfileAmerican, "American Diner", "🍔", []string{
		"All-American", "Diner Style", "Classic", "Blue Ribbon", "State Fair", "Main Street", "Roadside",
	}},
	{ProfileMexican, "Tex-Mex", "🌮", []string{
		"Fiesta", "Southwest", "Cantina", "Border Town", "Abuela's", "Mercado", "Rancho",
	}},
	{ProfileItalian, "Italian", "🍝", []string{
		"Nonna's", "Tuscan", "Trattoria", "Villa", "Sunday Gravy", "Old World", "Sicilian",
	}},
	{ProfileAsian, "Asian Fusion", "🥢", []string{
		"Fusion", "East Meets West", "Pacific Rim", "Lucky Dragon", "Umami", "Golden Wok", "Silk Road",
	}},
	{ProfileCajun, "Cajun/Creole", "🦐", []string{
		"Bayou", "N'awlins", "Creole", "Swamp Queen", "Mardi Gras", "French Quarter", "Big Easy",
	}},
	{ProfileBBQ, "BBQ", "🔥", []string{
		"Pitmaster", "Smokehouse", "Backyard", "Honky Tonk", "Roadhouse", "Low & Slow", "Texas Pride",
	}},
	{ProfileMediterranean, "Mediterranean", "🫒", []string{
		"Aegean", "Coastal", "Sun-Kissed", "Olive Grove", "Santorini", "Levantine", "Golden Coast",
	}},
	{ProfileEasternEuro, "Eastern European", "🥟", []string{
		"Babushka's", "Old Country", "Village", "Cozy Cottage", "Peasant", "Harvest", "Homestead",
	}},
	{ProfileBreakfast, "Breakfast for Dinner", "🍳", []string{
		"Rise & Shine", "Brunch", "Morning Glory", "Sunrise", "Lazy Morning", "Early Bird", "Rooster",
	}},
}

// ChaosNames are the name phrases used whenever chaos applies.
var ChaosNames = []string{
	"Mystery", "Chaos", "Wildcard", "Surprise", "YOLO",
	"Dice Roll", "Potluck Roulette", "Franken-", "Mad Scientist", "Kitchen Sink",
}

// ProfileKeys returns the real profile keys in enumeration order.
func ProfileKeys() []Profile {
	out := make([]Profile, len(Profiles))
	for i, p := range Profiles {
		out[i] = p.Key
	}
	return out
}

// LookupProfile returns the metadata for a real profile.
func LookupProfile(p Profile) (ProfileInfo, bool) {
	for _, info := range Profiles {
		if info.Key == p {
			return info, true
		}
	}
	return ProfileInfo{}, false
}

// IsChaos reports whether p is the chaos sentinel.
func (p Profile) IsChaos() bool { return p == ProfileChaos }

// Label returns the display label of the profile.
func (p Profile) Label() string {
	if p.IsChaos() {
		return "Wild Magic"
	}
	if info, ok := LookupProfile(p); ok {
		return info.Label
	}
	return string(p)
}

// Icon returns the icon glyph of the profile.
func (p Profile) Icon() string {
	if p.IsChaos() {
		return "🎲"
	}
	if info, ok := LookupProfile(p); ok {
		return info.Icon
	}
	return ""
}
