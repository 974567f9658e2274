package service

// Action is one of the three recommendations the analyzer can give.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionWait Action = "wait"
)

// Thresholds applied when the request does not override them.
const (
	DefaultBuyThreshold  float64 = 200
	DefaultSellThreshold float64 = 600
)

// Recommendation pairs the suggested action with the rule that produced it.
type Recommendation struct {
	Action Action `json:"action"`
	Reason string `json:"reason"`
}

// Analyzer turns a spot price and a pair of thresholds into a buy/sell/wait
// recommendation. It holds no state and is safe for concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies price against the thresholds map. The keys "buy" and
// "sell" override the defaults; other keys are ignored. Comparisons are
// strict, so a price sitting exactly on a threshold is neutral. Inverted
// thresholds (buy above sell) are not rejected, the branches just apply in
// order.
func (a *Analyzer) Analyze(price float64, thresholds map[string]float64) Recommendation {
	buy, ok := thresholds["buy"]
	if !ok {
		buy = DefaultBuyThreshold
	}
	sell, ok := thresholds["sell"]
	if !ok {
		sell = DefaultSellThreshold
	}

	switch {
	case price < buy:
		return Recommendation{Action: ActionBuy, Reason: "price below buy threshold"}
	case price > sell:
		return Recommendation{Action: ActionSell, Reason: "price above sell threshold"}
	default:
		return Recommendation{Action: ActionWait, Reason: "price neutral"}
	}
}
