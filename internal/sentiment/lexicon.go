package sentiment

// valences maps lexicon words to their polarity contribution in [-1.0, 1.0].
// Tuned for news headlines and ledes, so financial and geopolitical terms
// carry most of the weight.
var valences = map[string]float64{
	// positive
	"good": 0.6, "great": 0.8, "excellent": 0.9, "best": 0.8,
	"strong": 0.5, "stronger": 0.5, "robust": 0.5, "stellar": 0.8,
	"surge": 0.6, "surges": 0.6, "soar": 0.8, "soars": 0.8,
	"rally": 0.6, "rallies": 0.6, "rebound": 0.5, "rebounds": 0.5,
	"gain": 0.5, "gains": 0.5, "jump": 0.4, "jumps": 0.4,
	"rise": 0.3, "rises": 0.3, "climb": 0.3, "climbs": 0.3,
	"growth": 0.5, "grow": 0.4, "grows": 0.4, "expand": 0.4,
	"recovery": 0.5, "recover": 0.4, "recovers": 0.4,
	"profit": 0.5, "profits": 0.5, "record": 0.4, "beat": 0.4, "beats": 0.4,
	"optimism": 0.7, "optimistic": 0.7, "upbeat": 0.6, "confidence": 0.5,
	"hope": 0.4, "hopeful": 0.5, "promising": 0.6,
	"success": 0.7, "successful": 0.7, "win": 0.6, "wins": 0.6, "won": 0.5,
	"breakthrough": 0.8, "milestone": 0.5, "innovative": 0.6, "innovation": 0.5,
	"improve": 0.5, "improves": 0.5, "improved": 0.5, "improvement": 0.5,
	"boost": 0.5, "boosts": 0.5, "boosted": 0.5,
	"thrive": 0.7, "thriving": 0.7, "momentum": 0.3,
	"advance": 0.4, "advances": 0.4, "progress": 0.4,
	"positive": 0.5, "happy": 0.7, "love": 0.7, "praise": 0.6, "praised": 0.6,
	"safe": 0.4, "stable": 0.3, "calm": 0.3, "deal": 0.2, "agreement": 0.3,

	// negative
	"bad": -0.6, "worst": -0.9, "worse": -0.7, "terrible": -0.8, "poor": -0.5,
	"weak": -0.5, "weaker": -0.5, "fragile": -0.5,
	"crash": -0.8, "crashes": -0.8, "collapse": -0.8, "collapses": -0.8,
	"plunge": -0.7, "plunges": -0.7, "tumble": -0.6, "tumbles": -0.6,
	"slump": -0.6, "slumps": -0.6, "sink": -0.5, "sinks": -0.5,
	"fall": -0.4, "falls": -0.4, "drop": -0.4, "drops": -0.4,
	"decline": -0.5, "declines": -0.5, "slide": -0.4, "slides": -0.4,
	"loss": -0.5, "losses": -0.5, "lose": -0.5, "loses": -0.5, "lost": -0.5,
	"fear": -0.6, "fears": -0.6, "panic": -0.7, "anxiety": -0.6,
	"crisis": -0.7, "turmoil": -0.6, "chaos": -0.7, "recession": -0.7,
	"slowdown": -0.5, "downturn": -0.6, "stagnation": -0.5,
	"risk": -0.3, "risks": -0.3, "risky": -0.4,
	"warn": -0.4, "warns": -0.4, "warning": -0.4, "warnings": -0.4,
	"threat": -0.6, "threats": -0.6, "threaten": -0.6, "threatens": -0.6,
	"fail": -0.6, "fails": -0.6, "failed": -0.6, "failure": -0.7,
	"fraud": -0.8, "scandal": -0.7, "corruption": -0.7, "lawsuit": -0.4,
	"layoff": -0.6, "layoffs": -0.6, "cut": -0.3, "cuts": -0.3,
	"concern": -0.4, "concerns": -0.4, "doubt": -0.4, "doubts": -0.4,
	"uncertainty": -0.4, "volatile": -0.4, "volatility": -0.4,
	"miss": -0.4, "misses": -0.4, "missed": -0.4, "shortfall": -0.5,
	"war": -0.7, "conflict": -0.6, "attack": -0.6, "attacks": -0.6,
	"violence": -0.7, "death": -0.8, "deaths": -0.8, "disaster": -0.8,
	"negative": -0.5, "sad": -0.6, "angry": -0.6, "hate": -0.7,
	"hurt": -0.5, "hurts": -0.5, "damage": -0.5, "damages": -0.5,
	"ban": -0.4, "bans": -0.4, "sanction": -0.4, "sanctions": -0.4,
	"shutdown": -0.5, "outage": -0.5, "breach": -0.6, "hack": -0.5,
}

// negators invert the valence of the word that follows them.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "nor": true,
	"cannot": true, "cant": true, "dont": true, "doesnt": true,
	"didnt": true, "isnt": true, "wasnt": true, "wont": true,
	"without": true, "hardly": true, "barely": true,
}

// intensifiers scale the valence of the word that follows them.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "highly": 1.3,
	"hugely": 1.4, "massively": 1.4, "sharply": 1.3, "deeply": 1.3,
	"slightly": 0.6, "somewhat": 0.7, "mildly": 0.6,
}
