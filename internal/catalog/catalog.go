// Package catalog holds the static product data shown on the site and
// quoted by the chat assistant.
package catalog

import "klarhub-backend/internal/models"

const (
	ProductName   = "Klar Hub"
	DiscordInvite = "https://discord.gg/bGmGSnW3gQ"
)

var games = []models.Game{
	{
		Name: "Football Fusion 2",
		Abbr: "FF2",
		Features: []string{
			"Ball Magnets", "Pull Vector", "Enhanced Movement (Jump & Speed)", "No Jump Cooldown",
			"Custom Catch Effects", "QB Aimbot", "Auto Guard", "Auto QB", "Auto Rush", "Auto Boost",
			"Auto Getup", "Auto Reset", "Auto Swat", "Auto Catch", "Auto Jump", "Tackle Reach",
			"Endzone Reach", "Dive Power", "Click Tackle", "Head Resizement", "Quick TP",
			"Visualize Football Path", "Football Highlight", "No Texture (Boost FPS)", "Destroy Stadium",
			"No Weather", "Time of Day", "Field of View (FOV)", "Jump/Dive Prediction", "Streamer Mode",
			"No Football Trail",
		},
	},
	{
		Name: "Ultimate Football",
		Abbr: "UF",
		Features: []string{
			"Football Size Manipulation", "Arm Resize", "Enhanced Movement (Jump & Speed)",
			"No-Clip (Utility)", "Player ESP", "Infinite Stamina",
		},
	},
	{
		Name: "Murders VS Sheriffs Duels",
		Abbr: "MVSD",
		Features: []string{
			"Advanced Triggerbot", "Hitbox Extender", "Enhanced Movement (Jump & Speed)",
			"Player ESP", "Silent Aim", "Rapid Fire",
		},
	},
	{
		Name: "Arsenal",
		Features: []string{
			"Silent Aim", "Advanced Hitbox Manipulation", "Unlock All Skins", "Infinite Ammo",
			"Visual Tags (Admin, etc.)",
		},
	},
	{
		Name: "Flag Football",
		Features: []string{
			"Full Magnet & Aimbot Suite", "Player Enhancements (Speed, Jump)",
			"Full Auto-Play Suite (Catch, Rush)", "Visual Helpers (ESP, Paths)", "and more",
		},
	},
}

var pricing = []models.PricingTier{
	{Name: "1 Week Access", Price: "$1.50", URL: "https://klarhub.sellhub.cx/product/1-Week/", SpecialTag: "Most Popular"},
	{Name: "1 Month Access", Price: "$2.50", RobuxPrice: "450", URL: "https://klarhub.sellhub.cx/product/1-Month-Klar-Access/", RobuxURL: "https://www.roblox.com/catalog/116340932269907/KLAR-1-month"},
	{Name: "3 Month Access", Price: "$3.75", RobuxPrice: "800", URL: "https://klarhub.sellhub.cx/product/3-Month-Access/", RobuxURL: "https://www.roblox.com/catalog/71184399134072/KLAR-3-Month"},
	{Name: "6 Month Access", Price: "$5.50", RobuxPrice: "1225", URL: "https://klarhub.sellhub.cx/product/6-Month-Klar-Access/", RobuxURL: "https://www.roblox.com/catalog/134764715699815/KLAR-6-Month"},
	{Name: "Lifetime Access", Price: "$15.00", URL: "https://klarhub.sellhub.cx/product/New-product/", IsFeatured: true},
	{Name: "Extreme Alt Gen", Price: "$1.00", URL: "https://klarhub.sellhub.cx/product/Extreme-Alt-Gen/", SpecialTag: "On Sale"},
}

var faqs = []models.FAQ{
	{Question: "Is Klar Hub a one-time purchase?", Answer: "We offer both subscription and lifetime access plans. You can choose the one that best suits your needs."},
	{Question: "What payment methods are accepted?", Answer: "We accept all major payment methods through our secure online storefront, including credit cards, PayPal, and more."},
	{Question: "What executors are compatible?", Answer: "Our scripts are designed to be compatible with all major, high-quality executors on the market."},
	{Question: "How often are the scripts updated?", Answer: "We update our scripts regularly to ensure compatibility with the latest Roblox updates and to add new features. Updates are always free for active subscribers or lifetime members."},
}

var testimonials = []models.Testimonial{
	{Name: "Customer", Stars: 5, Text: "easiest checkout", Date: "Wed Jul 23 2025"},
	{Name: "Customer", Stars: 5, Text: "Amazing and easy", Date: "Wed Jul 16 2025"},
	{Name: "Customer", Stars: 5, Text: "best script out there cop now", Date: "Fri Jun 06 2025"},
}

// Default returns a copy of the product catalog. Callers may modify it freely.
func Default() models.Catalog {
	return models.Catalog{
		Product:       ProductName,
		Games:         cloneGames(games),
		Pricing:       append([]models.PricingTier(nil), pricing...),
		FAQs:          append([]models.FAQ(nil), faqs...),
		Testimonials:  append([]models.Testimonial(nil), testimonials...),
		DiscordInvite: DiscordInvite,
	}
}

func cloneGames(src []models.Game) []models.Game {
	out := make([]models.Game, len(src))
	for i, g := range src {
		g.Features = append([]string(nil), g.Features...)
		out[i] = g
	}
	return out
}
