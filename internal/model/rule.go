package model

// MatchRule assigns a remote account to import rows whose text matches
// Pattern. Rules are evaluated in list order and the first match wins, so
// rule order is the only tie-break when several rules could apply.
type MatchRule struct {
	Pattern string  // regexp searched anywhere in the row text
	Amount  *Amount // exact minor-unit magnitude; nil matches any amount
	Account AccountID
}
