package export

import (
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/parser"
)

// CatchAll is the keyword that matches any inbound message.
const CatchAll = "CATCHALL"

// englishCode marks rows whose replies also go to contacts without a language.
const englishCode = "eng"

// Keywords parses a keyword cell. Numeric keywords are written as integers ("6.0" -> "6").
func Keywords(cell string) []string {
	var keywords []string
	for _, k := range strings.Split(cell, ",") {
		k = strings.TrimSpace(k)
		if n, ok := parser.IntegerString(k); ok {
			k = n
		}
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Triggers returns the triggers replying to the keywords for contacts in the language.
func Triggers(keywords []string, lang models.Language) []models.Trigger {
	if len(keywords) == 0 {
		return nil
	}

	languageMatch := models.ContactFieldMatch{
		ContactFieldMatch: "exact",
		ContactFieldName:  "language",
		ContactFieldValue: lang.ContactValue(),
	}
	if len(keywords) == 1 && keywords[0] == CatchAll {
		return []models.Trigger{{
			TriggerParams: languageMatch,
			TriggerType:   models.TriggerMessageInboundCatchAll,
		}}
	}

	return []models.Trigger{
		{TriggerParams: languageMatch, TriggerType: models.TriggerMessageInbound},
		keywordTrigger(keywords),
	}
}

func keywordTrigger(keywords []string) models.Trigger {
	var params any = models.ExactMatches{ExactMatches: keywords}
	if len(keywords) == 1 {
		params = models.ExactMatch{ExactMatch: keywords[0]}
	}
	return models.Trigger{TriggerParams: params, TriggerType: models.TriggerMessageInbound}
}

// ReplyAutomator returns an automator that replies with the content when any trigger fires.
func ReplyAutomator(name string, triggers []models.Trigger) models.Automator {
	return newAutomator(name, []models.Action{{ActionType: models.ActionReply}}, triggers)
}

// LanguageSwitch returns an automator that replies and sets the contact's language when
// one of the keywords is received. It returns nil without keywords or language.
func LanguageSwitch(keywords []string, lang models.Language) *models.Automator {
	if len(keywords) == 0 || !lang.IsSet() {
		return nil
	}

	actions := []models.Action{
		{ActionType: models.ActionReply},
		{
			ActionParams: &models.ContactUpdate{
				ContactFieldName:  "language",
				ContactFieldValue: *lang.ContactValue(),
			},
			ActionType: models.ActionUpdateContact,
		},
	}
	automator := newAutomator(lang.Code()+"-language-switch", actions, []models.Trigger{keywordTrigger(keywords)})
	return &automator
}

// RowAutomators builds every automator for a content row. English rows get a second reply
// automator for contacts that have not picked a language yet.
func RowAutomators(title, automation, languageSwitch string, lang models.Language) []models.Automator {
	automators := []models.Automator{}

	keywords := Keywords(automation)
	if triggers := Triggers(keywords, lang); len(triggers) > 0 {
		name := strings.ReplaceAll(title, "_", "-")
		automators = append(automators, ReplyAutomator(name, triggers))

		if lang.Code() == englishCode {
			automators = append(automators, ReplyAutomator(
				strings.ReplaceAll(name, englishCode, "null-language"),
				Triggers(keywords, models.NoLanguage),
			))
		}
	}

	if switcher := LanguageSwitch(Keywords(languageSwitch), lang); switcher != nil {
		automators = append(automators, *switcher)
	}
	return automators
}

func newAutomator(name string, actions []models.Action, triggers []models.Trigger) models.Automator {
	return models.Automator{
		Config: models.AutomatorConfig{
			Data: models.AutomatorData{
				Actions:  actions,
				Operator: "AND",
				Triggers: triggers,
			},
			Version: models.AutomatorVersion,
		},
		Enabled:   true,
		IsDeleted: false,
		Name:      name,
	}
}
