package trades

import "government-trades/lib/textutil"

// classification is an ordered keyword rule list, first match wins.
// the declaration order below is canonical, reordering it changes how
// ambiguous values classify.
type ownerRule struct {
	keywords []string
	category OwnerCategory
}

var ownerRules = []ownerRule{
	{[]string{"spouse"}, OwnerSpouse},
	{[]string{"joint"}, OwnerJoint},
	{[]string{"child", "dependent", "family"}, OwnerFamily},
	{[]string{"self", "filer", "member"}, OwnerFiler},
}

type transactionRule struct {
	keywords []string
	category TransactionType
}

var transactionRules = []transactionRule{
	{[]string{"buy", "purchase", "acquisition"}, TransactionBuy},
	{[]string{"sell", "sale", "disposition"}, TransactionSell},
	{[]string{"exchange"}, TransactionExchange},
}

// NormalizeOwner maps a free-text owner cell onto the closed owner
// enum. Total, anything unmatched is unknown, never an error, this is
// best-effort classification against uncontrolled text.
func NormalizeOwner(value string) OwnerCategory {
	for _, rule := range ownerRules {
		if textutil.ContainsAny(value, rule.keywords) {
			return rule.category
		}
	}
	return OwnerUnknown
}

// NormalizeTransaction maps a free-text transaction cell onto the
// closed transaction enum. Total, same contract as NormalizeOwner.
func NormalizeTransaction(value string) TransactionType {
	for _, rule := range transactionRules {
		if textutil.ContainsAny(value, rule.keywords) {
			return rule.category
		}
	}
	return TransactionUnknown
}
