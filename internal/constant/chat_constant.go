package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Message lifecycle states. A pending message is the placeholder shown
	// while an answer is in flight; it is replaced in place on resolution.
	ChatMessageStatePending    = "pending"
	ChatMessageStateComplete   = "complete"
	ChatMessageStateWarning    = "warning"
	ChatMessageStatePIIFlagged = "pii-flagged"

	// Query submission flow states per session.
	FlowStateIdle     = "idle"
	FlowStatePending  = "pending"
	FlowStateResolved = "resolved"

	// Chat interaction modes.
	ChatModeQuick   = "quick"
	ChatModePrecise = "precise"
	ChatModeSummary = "summary"

	// Evidence access classifications.
	EvidenceClassOfficial   = "official"
	EvidenceClassUnofficial = "unofficial"
	EvidenceClassRestricted = "restricted"

	// Sentinel for "no filter applied" on every filter dimension and for the
	// saved-items category selection.
	FilterAll = "all"
)

// Filter enumerations mirror the selections the client offers. Values outside
// these lists are rejected at the DTO layer.
var (
	FilterDepartments   = []string{FilterAll, "hr", "finance", "it", "risk"}
	FilterDateRanges    = []string{FilterAll, "recent", "year"}
	FilterDocumentTypes = []string{FilterAll, "policy", "manual", "notice"}

	SavedCategories = []string{FilterAll, "인사", "재무", "IT", "리스크", "복지"}
)
