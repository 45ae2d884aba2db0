package steps

import (
	"github.com/goliatone/go-authform/pkg/fields"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

const (
	newPasswordPath         = "credentials.newPassword"
	passwordRequirementsID  = "password-authenticator--list"
	passwordRequirementsKey = "password.complexity.requirements.header"
)

func transformEnrollPassword(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	step := env.Transaction.NextStep

	fieldName := passcodePath
	password := layout.FindField(root, fieldName)
	if password == nil {
		fieldName = newPasswordPath
		password = layout.FindField(root, fieldName)
	}
	if password == nil {
		password = fields.NewField(idx.Input{Name: fieldName, Type: "string", Secret: true, Required: true})
		bag.Data[fieldName] = ""
	}
	password.SetAttribute("autocomplete", "new-password")

	confirm := fields.NewField(idx.Input{Name: validation.ConfirmPasswordPath, Type: "string", Secret: true})
	confirm.SetAttribute("autocomplete", "new-password")
	splitPasswordMessages(password, confirm)
	bag.Data[validation.ConfirmPasswordPath] = ""

	var settings *idx.PasswordSettings
	if step != nil && step.RelatesTo != nil {
		settings = step.RelatesTo.Value.Settings
	}
	requirements := &model.PasswordRequirements{
		Element: model.Element{ID: passwordRequirementsID},
		Options: model.PasswordRequirementsOptions{
			Header:            env.T(passwordRequirementsKey),
			UserInfo:          userInfo(env.Transaction),
			Settings:          settings,
			Requirements:      requirementItems(env, settings),
			FieldKey:          fieldName,
			ValidationDelayMs: passwordValidationDelayMs,
		},
	}

	root.Elements = []model.Node{
		title(env, "oie.password.enroll.title"),
		requirements,
		password,
		confirm,
		submitButton(env, "oform.next"),
	}
	layout.Append(root, footerLinks(env)...)

	bag.DataSchema.FieldsToExclude = []string{validation.ConfirmPasswordPath}
	bag.DataSchema.Rules[fieldName] = validation.PasswordMatch(fieldName, validation.ConfirmPasswordPath)
	return bag, nil
}

// splitPasswordMessages keeps unnamed messages and those naming the password
// on the password field and moves the first message naming the confirmation
// onto the confirmation field.
func splitPasswordMessages(password, confirm *model.Field) {
	meta := password.Options.InputMeta
	if meta == nil || len(meta.Messages) == 0 {
		return
	}
	var own []idx.Message
	var moved *idx.Message
	for i, msg := range meta.Messages {
		switch msg.Name {
		case "", meta.Name:
			own = append(own, msg)
		case validation.ConfirmPasswordPath:
			if moved == nil {
				moved = &meta.Messages[i]
			}
		}
	}
	if moved != nil {
		confirm.Options.InputMeta.Messages = idx.CloneMessages([]idx.Message{*moved})
	}
	meta.Messages = own
}

func userInfo(tx idx.Transaction) model.UserInfo {
	if tx.User == nil {
		return model.UserInfo{}
	}
	return model.UserInfo{
		Identifier: tx.User.Identifier,
		FirstName:  tx.User.FirstName,
		LastName:   tx.User.LastName,
	}
}

// requirementItems lists the complexity rules followed by the age rules of
// the policy.
func requirementItems(env model.Env, settings *idx.PasswordSettings) []model.RequirementItem {
	if settings == nil {
		return nil
	}
	var items []model.RequirementItem
	add := func(ruleKey, key string, params ...any) {
		items = append(items, model.RequirementItem{RuleKey: ruleKey, Label: env.T(key, params...)})
	}

	if c := settings.Complexity; c != nil {
		if c.MinLength > 0 {
			add("minLength", "password.complexity.length.description", c.MinLength)
		}
		if c.MinLowerCase > 0 {
			add("minLowerCase", "password.complexity.lowercase.description")
		}
		if c.MinUpperCase > 0 {
			add("minUpperCase", "password.complexity.uppercase.description")
		}
		if c.MinNumber > 0 {
			add("minNumber", "password.complexity.number.description")
		}
		if c.MinSymbol > 0 {
			add("minSymbol", "password.complexity.symbol.description")
		}
		if c.ExcludeUsername {
			add("excludeUsername", "password.complexity.no_username.description")
		}
		for _, attr := range c.ExcludeAttributes {
			switch attr {
			case "firstName":
				add("firstName", "password.complexity.no_first_name.description")
			case "lastName":
				add("lastName", "password.complexity.no_last_name.description")
			}
		}
	}

	if a := settings.Age; a != nil {
		if a.HistoryCount > 0 {
			add("historyCount", "password.complexity.history.description", a.HistoryCount)
		}
		if a.MinAgeMinutes > 0 {
			key, value := minimumAge(a.MinAgeMinutes)
			add("minAgeMinutes", key, value)
		}
	}
	return items
}

// minimumAge expresses a minimum password age in the largest whole unit,
// rounding up.
func minimumAge(minutes int) (string, int) {
	const (
		minutesPerHour = 60
		minutesPerDay  = 24 * minutesPerHour
	)
	switch {
	case minutes < minutesPerHour:
		return "password.complexity.minAgeMinutes.description", minutes
	case minutes < minutesPerDay:
		return "password.complexity.minAgeHours.description", ceilDiv(minutes, minutesPerHour)
	default:
		return "password.complexity.minAgeDays.description", ceilDiv(minutes, minutesPerDay)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func transformExpiredPassword(bag model.FormBag, env model.Env) (model.FormBag, error) {
	bag, err := transformEnrollPassword(bag, env)
	if err != nil {
		return bag, err
	}
	root := bag.UISchema

	heading := title(env, "password.expired.title.generic")
	if brand := env.Config.BrandName; brand != "" {
		heading = title(env, "password.expired.title.specific", brand)
	}
	if len(root.Elements) > 0 {
		if _, ok := root.Elements[0].(*model.Title); ok {
			root.Elements[0] = heading
		}
	}

	// The enrollment submit is replaced, so the step keeps a single submit.
	pos := layout.IndexOf(root, layout.IsSubmitButton)
	layout.Remove(root, layout.IsSubmitButton)
	if pos < 0 {
		pos = layout.IndexOf(root, layout.IsKind(model.KindLink))
	}
	if pos < 0 {
		pos = len(root.Elements)
	}
	layout.Insert(root, pos, submitButton(env, "password.expired.submit"))
	return bag, nil
}
