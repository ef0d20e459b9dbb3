// Package classifier implements the deterministic keyword heuristics for
// category prediction and merchant enrichment. It is the dependency-free
// fallback path used whenever the AI delegate is absent or fails.
package classifier

import (
	"github.com/fintracker/insights/internal/domain/entity"
)

// categoryKeywords holds a category's keyword set for scoring.
// All keywords are lowercase; matching is case-insensitive substring.
type categoryKeywords struct {
	category entity.CategoryID
	keywords []string
}

// categoryKeywordTable is the scoring table for the classifier. The slice
// order is the documented tie-break order: when two categories score
// equally, the earlier entry wins. Do not reorder.
var categoryKeywordTable = []categoryKeywords{
	{entity.CategoryFood, []string{
		"restaurant", "cafe", "burger", "pizza", "taco", "sushi", "dinner",
		"lunch", "breakfast", "food", "dining", "takeout", "delivery", "mcdonalds",
		"starbucks", "doordash", "grubhub", "ubereats", "chipotle", "bakery",
	}},
	{entity.CategoryGrocery, []string{
		"supermarket", "grocery", "market", "food store", "walmart", "target",
		"kroger", "costco", "safeway", "whole foods", "aldi", "trader joes",
		"publix", "food shopping", "groceries", "organic",
	}},
	{entity.CategoryTransport, []string{
		"gas", "fuel", "uber", "lyft", "taxi", "bus", "train", "subway", "metro",
		"transportation", "commute", "toll", "parking", "car service", "shuttle",
		"rideshare", "transit", "carpool", "fare", "gasoline", "petrol",
	}},
	{entity.CategoryEntertainment, []string{
		"movie", "cinema", "theater", "concert", "netflix", "spotify", "hulu",
		"disney+", "show", "game", "ticket", "amusement", "streaming", "music",
		"festival", "performance", "subscription", "amazon prime", "apple tv", "hbo",
	}},
	{entity.CategoryShopping, []string{
		"amazon", "mall", "store", "shop", "ebay", "etsy", "clothing", "shoes",
		"retail", "purchase", "buy", "online shopping", "department store", "outlet",
		"boutique", "apparel", "fashion", "electronics", "gadget", "accessory",
	}},
	{entity.CategoryHousing, []string{
		"rent", "mortgage", "apartment", "home", "house", "property", "lease",
		"deposit", "real estate", "down payment", "housing", "landlord", "tenant",
		"maintenance", "repair", "hoa", "community", "condo", "townhouse",
	}},
	{entity.CategoryUtilities, []string{
		"electric", "water", "gas", "internet", "wifi", "phone", "bill", "utility",
		"cable", "electricity", "power", "service", "sewage", "garbage", "trash",
		"collection", "broadband", "landline", "mobile", "provider", "connection",
	}},
	{entity.CategoryHealthcare, []string{
		"doctor", "hospital", "clinic", "pharmacy", "prescription", "medicine",
		"dental", "medical", "health", "checkup", "appointment", "insurance",
		"dentist", "therapy", "physician", "specialist", "copay", "treatment",
		"emergency", "urgent care", "medication", "drug", "vitamin", "supplement",
	}},
	{entity.CategoryEducation, []string{
		"tuition", "school", "college", "university", "course", "book", "class",
		"student", "loan", "education", "textbook", "degree", "program", "study",
		"training", "workshop", "certification", "seminar", "campus", "learning",
	}},
	{entity.CategoryPersonal, []string{
		"haircut", "salon", "spa", "gym", "fitness", "wellness", "beauty", "cosmetics",
		"personal care", "grooming", "self-care", "massage", "barber", "stylist",
		"skincare", "makeup", "manicure", "pedicure", "hygiene", "product",
	}},
	{entity.CategoryTravel, []string{
		"hotel", "flight", "airplane", "booking", "vacation", "trip", "airbnb",
		"motel", "travel", "tourism", "tour", "cruise", "resort", "lodge", "camping",
		"destination", "accommodation", "airline", "rental", "luggage", "passport",
	}},
	{entity.CategorySubscription, []string{
		"subscription", "membership", "monthly", "annual", "renewal", "recurring",
		"service", "access", "plan", "premium", "account", "fee", "bill", "dues",
		"auto-pay", "regular payment", "auto-renewal", "club",
	}},
	{entity.CategorySalary, []string{
		"salary", "paycheck", "direct deposit", "wage", "income", "payment",
		"compensation", "earnings", "pay", "net pay", "gross pay", "employer",
		"company", "job", "employment", "payroll", "deposit", "hr", "human resources",
	}},
	{entity.CategoryFreelance, []string{
		"freelance", "client", "project", "gig", "contract", "consulting", "invoice",
		"self-employed", "commission", "job", "side hustle", "independent", "contractor",
		"service", "work", "business", "entrepreneur", "billable", "professional",
	}},
	{entity.CategoryGift, []string{
		"gift", "present", "donation", "charity", "contribute", "contribution",
		"birthday", "holiday", "christmas", "wedding", "support", "anniversary",
		"celebration", "occasion", "giving", "generosity", "fundraiser",
	}},
	{entity.CategoryInvestment, []string{
		"investment", "stock", "bond", "dividend", "interest", "fund", "portfolio",
		"retirement", "ira", "401k", "etf", "mutual fund", "share", "security",
		"capital", "broker", "brokerage", "asset", "wealth", "finance",
	}},
	{entity.CategoryRefund, []string{
		"refund", "return", "cashback", "reimbursement", "credit", "chargeback",
		"money back", "exchange", "compensation", "rebate", "adjustment", "correction",
		"reversal", "repayment", "dispute",
	}},
}

// incomeIndicators flag a description as income when no category scores
// above the significance threshold.
var incomeIndicators = []string{"income", "deposit", "salary", "payment received"}

// merchantRule maps keywords to a canonical merchant. Rules are checked in
// list order and the first rule with any keyword match wins; this is a
// first-match lookup, not best-score like the classifier.
type merchantRule struct {
	keywords []string
	name     string
	category entity.CategoryID
	icon     string
}

// merchantRules is the ordered enrichment rule list.
var merchantRules = []merchantRule{
	{[]string{"amazon", "amzn"}, "Amazon", entity.CategoryShopping, "🛍️"},
	{[]string{"walmart", "target", "costco", "sams club"}, "Retail Store", entity.CategoryShopping, "🛍️"},
	{[]string{"uber", "lyft", "taxi", "cab"}, "Ride Share", entity.CategoryTransport, "🚗"},
	{[]string{"netflix", "hulu", "disney+", "hbo"}, "Streaming Service", entity.CategorySubscription, "📱"},
	{[]string{"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "burger", "pizza"}, "Restaurant", entity.CategoryFood, "🍔"},
	{[]string{"grocery", "supermarket", "food store", "trader joe", "whole foods"}, "Grocery Store", entity.CategoryGrocery, "🛒"},
	{[]string{"gas", "shell", "exxon", "chevron", "bp"}, "Gas Station", entity.CategoryTransport, "⛽"},
	{[]string{"doctor", "medical", "hospital", "clinic", "pharmacy", "dental"}, "Healthcare Provider", entity.CategoryHealthcare, "🏥"},
	{[]string{"spotify", "apple music", "pandora"}, "Music Service", entity.CategorySubscription, "🎵"},
	{[]string{"rent", "mortgage", "apartment", "house payment"}, "Housing", entity.CategoryHousing, "🏠"},
	{[]string{"electric", "water", "gas", "utility", "internet", "phone bill"}, "Utility Company", entity.CategoryUtilities, "💡"},
	{[]string{"gym", "fitness", "workout"}, "Fitness", entity.CategoryPersonal, "💪"},
	{[]string{"school", "tuition", "college", "university", "course"}, "Education", entity.CategoryEducation, "📚"},
	{[]string{"hotel", "airbnb", "booking", "flight", "airline", "travel"}, "Travel", entity.CategoryTravel, "✈️"},
	{[]string{"salary", "payroll", "direct deposit", "income"}, "Income", entity.CategorySalary, "💰"},
}
