package auth

// Scopes used by the program API. Write implies read.
const (
	ScopeProgramsRead  = "programs:read"
	ScopeProgramsWrite = "programs:write"
)
