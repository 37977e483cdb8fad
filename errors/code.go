package errors

// Registry error taxonomy. The numeric codes are part of the external
// contract: indexers and clients match on them, so they must stay stable.
//
// AlreadyFunded and FundingNotActive are reserved for the future
// funding-contribution transition; no current operation returns them.
const (
	CodeNotAuthorized      = 100
	CodeDuplicateHash      = 101
	CodeInvalidHash        = 102
	CodePaperNotFound      = 103
	CodeInvalidFundingGoal = 104
	CodeInvalidTitle       = 105
	CodeInvalidDescription = 106
	CodeInvalidPrincipal   = 107
	CodeAlreadyFunded      = 108
	CodeFundingNotActive   = 109
)

func NotAuthorized() ErrorEnricher      { return WithCode(CodeNotAuthorized) }
func DuplicateHash() ErrorEnricher      { return WithCode(CodeDuplicateHash) }
func InvalidHash() ErrorEnricher        { return WithCode(CodeInvalidHash) }
func PaperNotFound() ErrorEnricher      { return WithCode(CodePaperNotFound) }
func InvalidFundingGoal() ErrorEnricher { return WithCode(CodeInvalidFundingGoal) }
func InvalidTitle() ErrorEnricher       { return WithCode(CodeInvalidTitle) }
func InvalidDescription() ErrorEnricher { return WithCode(CodeInvalidDescription) }
func InvalidPrincipal() ErrorEnricher   { return WithCode(CodeInvalidPrincipal) }
