package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

func strPtr(s string) *string { return &s }

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"hi, hello ,hey", []string{"hi", "hello", "hey"}},
		{"6.0", []string{"6"}},
		{"6.7,menu", []string{"6", "menu"}},
		{" , ,", nil},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Keywords(tt.input), "Keywords(%q)", tt.input)
	}
}

func TestTriggersCatchAll(t *testing.T) {
	triggers := Triggers([]string{CatchAll}, models.LanguageCode("zul"))

	require.Len(t, triggers, 1)
	assert.Equal(t, models.TriggerMessageInboundCatchAll, triggers[0].TriggerType)
	assert.Equal(t, models.ContactFieldMatch{
		ContactFieldMatch: "exact",
		ContactFieldName:  "language",
		ContactFieldValue: strPtr("ZUL"),
	}, triggers[0].TriggerParams)
}

func TestTriggersCatchAllLanguages(t *testing.T) {
	tests := []struct {
		name  string
		lang  models.Language
		value *string
	}{
		{"english", models.LanguageCode("eng"), strPtr("ENG")},
		{"no language", models.NoLanguage, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triggers := Triggers([]string{CatchAll}, tt.lang)

			require.Len(t, triggers, 1)
			assert.Equal(t, models.Trigger{
				TriggerParams: models.ContactFieldMatch{
					ContactFieldMatch: "exact",
					ContactFieldName:  "language",
					ContactFieldValue: tt.value,
				},
				TriggerType: models.TriggerMessageInboundCatchAll,
			}, triggers[0])
		})
	}
}

func TestRowAutomatorsEnglishCatchAll(t *testing.T) {
	automators := RowAutomators("eng_fallback", CatchAll, "", models.LanguageCode("eng"))

	require.Len(t, automators, 2)
	assert.Equal(t, "eng-fallback", automators[0].Name)
	assert.Equal(t, "null-language-fallback", automators[1].Name)
	for i, want := range []*string{strPtr("ENG"), nil} {
		triggers := automators[i].Config.Data.Triggers
		require.Len(t, triggers, 1)
		assert.Equal(t, models.TriggerMessageInboundCatchAll, triggers[0].TriggerType)
		assert.Equal(t, want, triggers[0].TriggerParams.(models.ContactFieldMatch).ContactFieldValue)
	}
}

func TestTriggersSingleKeyword(t *testing.T) {
	triggers := Triggers([]string{"hi"}, models.LanguageCode("eng"))

	require.Len(t, triggers, 2)
	assert.Equal(t, models.Trigger{
		TriggerParams: models.ContactFieldMatch{
			ContactFieldMatch: "exact",
			ContactFieldName:  "language",
			ContactFieldValue: strPtr("ENG"),
		},
		TriggerType: models.TriggerMessageInbound,
	}, triggers[0])
	assert.Equal(t, models.Trigger{
		TriggerParams: models.ExactMatch{ExactMatch: "hi"},
		TriggerType:   models.TriggerMessageInbound,
	}, triggers[1])
}

func TestTriggersManyKeywords(t *testing.T) {
	triggers := Triggers([]string{"hi", "hello", CatchAll}, models.NoLanguage)

	require.Len(t, triggers, 2)
	match, ok := triggers[0].TriggerParams.(models.ContactFieldMatch)
	require.True(t, ok)
	assert.Nil(t, match.ContactFieldValue)
	assert.Equal(t, models.ExactMatches{ExactMatches: []string{"hi", "hello", CatchAll}}, triggers[1].TriggerParams)
}

func TestTriggersEmpty(t *testing.T) {
	assert.Empty(t, Triggers(nil, models.LanguageCode("eng")))
}

func TestRowAutomatorsEnglish(t *testing.T) {
	automators := RowAutomators("eng_welcome_menu", "hi,hello", "", models.LanguageCode("eng"))

	require.Len(t, automators, 2)
	assert.Equal(t, "eng-welcome-menu", automators[0].Name)
	assert.Equal(t, "null-language-welcome-menu", automators[1].Name)

	for _, a := range automators {
		assert.True(t, a.Enabled)
		assert.False(t, a.IsDeleted)
		assert.Equal(t, "AND", a.Config.Data.Operator)
		assert.Equal(t, models.AutomatorVersion, a.Config.Version)
		assert.Equal(t, []models.Action{{ActionType: models.ActionReply}}, a.Config.Data.Actions)
	}

	match := automators[1].Config.Data.Triggers[0].TriggerParams.(models.ContactFieldMatch)
	assert.Nil(t, match.ContactFieldValue)
}

func TestRowAutomatorsOtherLanguage(t *testing.T) {
	automators := RowAutomators("zul_welcome", "sawubona", "", models.LanguageCode("zul"))

	require.Len(t, automators, 1)
	assert.Equal(t, "zul-welcome", automators[0].Name)
}

func TestRowAutomatorsNoKeywords(t *testing.T) {
	automators := RowAutomators("eng_about", "", "", models.LanguageCode("eng"))

	assert.NotNil(t, automators)
	assert.Empty(t, automators)
}

func TestRowAutomatorsLanguageSwitch(t *testing.T) {
	automators := RowAutomators("zul_language", "", "isizulu, zulu", models.LanguageCode("zul"))

	require.Len(t, automators, 1)
	switcher := automators[0]
	assert.Equal(t, "zul-language-switch", switcher.Name)
	assert.Equal(t, []models.Action{
		{ActionType: models.ActionReply},
		{
			ActionParams: &models.ContactUpdate{ContactFieldName: "language", ContactFieldValue: "ZUL"},
			ActionType:   models.ActionUpdateContact,
		},
	}, switcher.Config.Data.Actions)
	assert.Equal(t, []models.Trigger{{
		TriggerParams: models.ExactMatches{ExactMatches: []string{"isizulu", "zulu"}},
		TriggerType:   models.TriggerMessageInbound,
	}}, switcher.Config.Data.Triggers)
}

func TestLanguageSwitchWithoutLanguage(t *testing.T) {
	assert.Nil(t, LanguageSwitch([]string{"english"}, models.NoLanguage))
	assert.Nil(t, LanguageSwitch(nil, models.LanguageCode("eng")))
}
