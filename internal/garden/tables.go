package garden

// Canonical season keys.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
)

// Canonical plant keys.
const (
	PlantFlower    = "flower"
	PlantVegetable = "vegetable"
)

// CanonicalSeasons lists the season keys in display order.
var CanonicalSeasons = []string{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// CanonicalPlants lists the plant keys in display order.
var CanonicalPlants = []string{PlantFlower, PlantVegetable}

// AdviceTable maps season key -> plant key -> ordered tip lines.
type AdviceTable map[string]map[string][]string

// RecommendationTable maps season key -> ordered plant names to suggest.
type RecommendationTable map[string][]string

// SeasonAliases maps accepted (already normalized) season text to its
// canonical key. "fall" is treated as "autumn".
var SeasonAliases = map[string]string{
	"spring": SeasonSpring,
	"summer": SeasonSummer,
	"autumn": SeasonAutumn,
	"fall":   SeasonAutumn,
	"winter": SeasonWinter,
}

// PlantAliases maps accepted (already normalized) plant text to its
// canonical key.
var PlantAliases = map[string]string{
	"flower":     PlantFlower,
	"flowers":    PlantFlower,
	"vegetable":  PlantVegetable,
	"veg":        PlantVegetable,
	"vegetables": PlantVegetable,
}

// Advice holds the tip lines for every (season, plant) pair.
var Advice = AdviceTable{
	SeasonSpring: {
		PlantFlower: {
			"Deadhead early blooms and add a balanced fertiliser.",
			"Divide overcrowded perennials.",
		},
		PlantVegetable: {
			"Start cool-season crops and harden off seedlings.",
			"Prepare beds with compost.",
		},
	},
	SeasonSummer: {
		PlantFlower: {
			"Water in the morning and mulch to retain moisture.",
			"Pinch leggy annuals to encourage new blooms.",
		},
		PlantVegetable: {
			"Water consistently and watch for pests (aphids, beetles).",
			"Harvest frequently to keep plants productive.",
		},
	},
	SeasonAutumn: {
		PlantFlower: {
			"Plant spring-flowering bulbs.",
			"Cut back spent annuals and tidy beds.",
		},
		PlantVegetable: {
			"Sow/plant cool-season crops; protect from early frosts.",
			"Add leaf mulch to improve soil.",
		},
	},
	SeasonWinter: {
		PlantFlower: {
			"Protect tender perennials with covers in frost-prone areas.",
			"Plan next year’s colour scheme.",
		},
		PlantVegetable: {
			"Clean and oil tools; plan crop rotation.",
			"Start seeds indoors where appropriate.",
		},
	},
}

// Recommendations holds the per-season plant suggestions.
var Recommendations = RecommendationTable{
	SeasonSpring: {"Snapdragon", "Lettuce", "Radish"},
	SeasonSummer: {"Zinnia", "Tomato", "Basil"},
	SeasonAutumn: {"Crocus (bulbs)", "Kale", "Spinach"},
	SeasonWinter: {"Hellebore (mild climates)", "Microgreens", "Garlic (in mild regions)"},
}
