package core

type ElectionStatus string

const (
	ElectionStatusInit   ElectionStatus = "INIT"
	ElectionStatusOpen   ElectionStatus = "OPEN"
	ElectionStatusClosed ElectionStatus = "CLOSED"
)

// ListID names one of the two ballot partitions.
type ListID string

const (
	ListUnranked ListID = "unranked"
	ListRanked   ListID = "ranked"
)
