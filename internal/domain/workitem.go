package domain

// WorkItemRef is the bare reference returned by the "work items linked to a
// pull request" call. The id is a string on the wire.
type WorkItemRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// WorkItem is a resolved work item ready for display. Link is a deep link
// into the Azure DevOps web UI, built by us rather than returned upstream.
type WorkItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Link  string `json:"link"`
}
