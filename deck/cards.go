package deck

// PromptCard is a prompt with one or more blanks; Pick is how many response
// cards a player needs to complete it.
type PromptCard struct {
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

// Built-in decks, used whenever the configured deck files are missing or yield
// no valid cards. Big enough for a full game, small enough to keep in source.
var DefaultPrompts = []PromptCard{
	{Text: "My toxic trait is _____.", Pick: 1},
	{Text: "Nothing ruins a party faster than _____.", Pick: 1},
	{Text: "At brunch, I accidentally ordered _____.", Pick: 1},
	{Text: "My secret superpower is _____.", Pick: 1},
	{Text: "The real reason the group chat is silent: _____.", Pick: 1},
	{Text: "I knew it was going to be a weird night when _____.", Pick: 1},
	{Text: "Step 1: _____. Step 2: profit.", Pick: 1},
	{Text: "The only thing keeping me going is _____.", Pick: 1},
	{Text: "On my vision board: more money, less stress, and _____.", Pick: 1},
	{Text: "The worst thing to hear on a first date: _____.", Pick: 1},
}

var DefaultResponses = []string{
	"a suspiciously wet sock", "a dramatic spreadsheet", "unearned confidence", "microwaved sushi",
	"a haunted air fryer", "group project trauma", "aggressive eye contact", "a cursed coupon",
	"an emotional support burrito", "three raccoons in a trench coat", "a motivational scream",
	"budget champagne", "a questionable mustache", "main-character delusion", "expired glitter",
	"an unsolicited TED Talk", "cold pizza at 2am", "vibes and poor decisions", "an awkward thumbs-up",
	"chaotic neutral energy", "overpriced coffee", "instant regret", "a feral pep talk", "secondhand embarrassment",
}
