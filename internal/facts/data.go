package facts

// Facts are the short facts shown by the rotating fact banner.
var Facts = []string{
	"Did you know? Oceans produce 70% of our oxygen!",
	"The ocean contains 99% of Earth's living space.",
	"Less than 20% of the ocean has been mapped and explored.",
	"The Mariana Trench is deeper than Mount Everest is tall.",
	"Ocean currents move 100 times more water than all rivers combined.",
	"The ocean absorbs about 30% of carbon dioxide from the atmosphere.",
	"Coral reefs support 25% of marine species despite covering <1% of ocean floor.",
	"The Great Barrier Reef can be seen from space!",
	"94% of life on Earth is aquatic.",
	"The ocean is home to the largest animal ever: the Blue Whale.",
	"Sharks have been around longer than trees!",
	"The deepest point on Earth is in the Pacific's Challenger Deep.",
	"Ocean waves can travel thousands of miles without losing energy.",
	"Seahorses are the only species where males give birth.",
	"The ocean contains enough salt to cover all land 500 feet deep.",
}

// Slide is one entry of the gallery carousel.
type Slide struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Gallery holds the carousel slides in display order.
var Gallery = []Slide{
	{Icon: "🌊", Text: "The ocean contains 99% of the living space on our planet and less than 10% of that space has been explored by humans."},
	{Icon: "🐋", Text: "Blue whales are the largest animals ever known to have lived on Earth, reaching lengths of up to 100 feet."},
	{Icon: "🏔️", Text: "The deepest part of the ocean is the Mariana Trench, reaching depths of over 36,000 feet."},
	{Icon: "🌡️", Text: "The ocean absorbs about 30% of carbon dioxide produced by humans, helping to regulate Earth's climate."},
	{Icon: "⚡", Text: "Ocean currents transport warm water and precipitation from the equator toward the poles and cold water from the poles back to the tropics."},
	{Icon: "🐠", Text: "Scientists estimate that there are between 500,000 to 2 million marine species yet to be discovered."},
}
