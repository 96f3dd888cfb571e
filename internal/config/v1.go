package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/zbiljic/jskit/pkg/commit"
)

const configVersionV1 = "1"

type configV1 struct {
	Version string                  `json:"version"`         // required by vconfig-go
	Types   []commitTypeConfigV1    `json:"types,omitempty"` // replaces the default vocabulary
	Release releaseConfigV1         `json:"release,omitzero"`
	Tools   map[string]toolConfigV1 `json:"tools,omitempty"`
	Suggest suggestConfigV1         `json:"suggest,omitzero"`
}

// commitTypeConfigV1 represents a commit type of the vocabulary
type commitTypeConfigV1 struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Release     commit.ReleaseType `json:"release"`
}

// releaseConfigV1 represents release and publish settings
type releaseConfigV1 struct {
	Branch      string   `json:"branch,omitempty"`
	RequiredEnv []string `json:"required_env,omitempty"`
}

// toolConfigV1 overrides a wrapped tool
type toolConfigV1 struct {
	Name string   `json:"name,omitempty"`
	Args []string `json:"args,omitempty"`
}

// suggestConfigV1 represents the commit message suggestion settings
type suggestConfigV1 struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version: configVersionV1,
	}
}

func (c *configV1) validateV1() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Version, validation.Required, validation.In(configVersionV1)),
		validation.Field(&c.Types),
		validation.Field(&c.Tools, validation.Map(
			validation.Key(ToolLint).Optional(),
			validation.Key(ToolFormat).Optional(),
			validation.Key(ToolRelease).Optional(),
			validation.Key(ToolPublish).Optional(),
		)),
		validation.Field(&c.Suggest),
	)
}

func (t commitTypeConfigV1) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Release, validation.By(func(value any) error {
			if rt, _ := value.(commit.ReleaseType); !rt.Valid() {
				return validation.NewError("validation_invalid_release", "must be none, patch, minor or major")
			}
			return nil
		})),
	)
}

func (s suggestConfigV1) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Provider, validation.In("openai", "claude", "googleai")),
	)
}
