package usecase

// Exported for testing
var AuthorizeCreation = authorizeCreation
