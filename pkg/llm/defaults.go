package llm

const (
	PromptIntro   = "A commit message was rejected because it does not follow the required format. Rewrite it so that it does, keeping its meaning."
	PromptDetails = `Use the code diff, when given, to choose the type and scope.
Your entire response will be used as the commit message.
`
)

var (
	PromptSystemFormat = `You are a commit message fixer that follows these rules:
1. Write in present tense
2. Be concise and direct
3. Output only the commit message without any explanations
4. Follow the format: %s
5. The type is case-sensitive and must be one of: %s
`
	PromptTypesFormat     = "Choose a type from the type-to-description map below that best describes the change:\n%s"
	PromptMaxLengthFormat = "Commit message must be a maximum of %d characters."
	PromptRejectedFormat  = "Rejected commit message:\n```\n%s\n```\n"
	PromptCodeDiffFormat  = "Code diff:\n```diff\n%s\n```\n"
)

// Default values for commit message suggestions
const (
	DefaultMaxLength      = 72
	DefaultCandidateCount = 3
	DefaultMaxDiffLength  = 12000

	DefaultMaxTokens   = 256
	DefaultTemperature = 0.7
)
