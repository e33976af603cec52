package referee

// Fallback replies.
const (
	CommentaryUnavailable = "AI services unavailable."
	CommentaryFailed      = "Could not generate commentary at this time."
	RefereeUnavailable    = "The referee is currently unavailable."
	RefereeFailed         = "The referee is distracted. Please try again later."
	PredictionUnavailable = "AI prediction unavailable."
	PredictionFailed      = "Prediction unavailable."
	PredictionDoubles     = "Predictions unavailable for doubles teams."
)

// Role of a chat turn.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of the rules chat.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// MatchSummary is what commentary is written about.
type MatchSummary struct {
	Side1  []string
	Side2  []string
	Score1 int
	Score2 int
}

const refereeInstruction = "You are an expert pickleball referee and coach. Answer questions about pickleball rules, " +
	"scoring, strategy and etiquette clearly and briefly. If a question is not about pickleball, politely decline and " +
	"steer the conversation back to the game."
