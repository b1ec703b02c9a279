package impl

import "strings"

// intentRule pairs a keyword set with its canned reply. Rules are evaluated
// in order and the first match wins, so a message containing both "food" and
// "hello" gets the food answer. Keep the table order stable.
type intentRule struct {
	Name     string
	Keywords []string
	Reply    string
}

// greetingMessage is the assistant's fixed opening turn in every
// conversation.
const greetingMessage = "Hi! I'm Campus AI, your VSSUT companion. Ask me about food, services, transport, or places near campus! 🎓"

// fallbackReply answers messages that match no rule.
const fallbackReply = "I can help you with information about:\n\n• 🍔 Food places near campus\n• 🚗 Transport (autos, taxis)\n• 📍 Tourist spots & places\n• 🛠️ Services (xerox, repairs)\n• 💇 Salons\n\nTry asking something like 'Where can I eat?' or 'How do I get to Sambalpur?'"

var intentRules = []intentRule{
	{
		Name:     "food",
		Keywords: []string{"food", "eat", "restaurant"},
		Reply:    "🍔 For food near VSSUT, I recommend:\n\n• **Sharma Dhaba** - Great thalis (₹60-100)\n• **Maa Tara Stall** - Authentic Odia food\n• **Biryani House** - Best biryani near campus\n• **Night Canteen** - Late night snacks\n\nCheck the Food section for more options!",
	},
	{
		Name:     "transport",
		Keywords: []string{"transport", "auto", "taxi"},
		Reply:    "🚗 Transport options from VSSUT:\n\n• **Main Gate Auto** - ₹20-40 to Burla Town\n• **E-Rickshaw** - ₹10-20 to Railway Station\n• **Sambalpur Taxi** - ₹300-500 to Sambalpur\n• **Ola/Uber** - Available 24/7\n\nAutos are most affordable for short distances!",
	},
	{
		Name:     "places",
		Keywords: []string{"place", "visit", "tourist"},
		Reply:    "📍 Places to visit near VSSUT:\n\n• **Hirakud Dam** - 15 km, amazing sunset views\n• **Maa Samaleswari Temple** - 10 km, famous temple\n• **Debrigarh Sanctuary** - 40 km, wildlife\n• **Town Mall** - 9 km, shopping & food\n\nHirakud Dam is a must-visit!",
	},
	{
		Name:     "services",
		Keywords: []string{"service", "xerox", "print"},
		Reply:    "🛠️ Services near campus:\n\n• **Shree Xerox** - ₹1/page B&W, 200m from gate\n• **Quick Stationery** - Inside campus\n• **Raju Mobile Repair** - 500m from campus\n• **Cycle Repair Point** - 100m from hostel\n\nXerox center is closest for printouts!",
	},
	{
		Name:     "salons",
		Keywords: []string{"salon", "haircut", "hair"},
		Reply:    "💇 Salons near VSSUT:\n\n• **Style Studio** (Men) - ₹80 haircut\n• **Beauty Point** (Women) - ₹150+ haircut\n• **Unisex Hair Hub** - ₹100+ for all\n\nAll within 500m of campus gate!",
	},
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi", "hey"},
		Reply:    "Hello! 👋 I'm here to help you navigate life at VSSUT Burla. Ask me about:\n\n• 🍔 Food & Restaurants\n• 🚗 Transport options\n• 📍 Places to visit\n• 🛠️ Services nearby\n• 💇 Salons\n\nWhat would you like to know?",
	},
}

// cannedReply classifies a message against the rule table. The match is a
// plain case-insensitive substring test, not word-boundary aware.
func cannedReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Reply
			}
		}
	}
	return fallbackReply
}
