package render

import (
	"testing"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
)

func TestContextChoiceList(t *testing.T) {
	ctx := Context{
		Choices: []string{"thin", "deep dish", "stuffed"},
		Options: prompt.Options{
			AllowNumberMatching: prompt.BoolTrue,
			ValueCase:           prompt.CaseInitialUpper,
			Separator:           prompt.String(", "),
			LastSeparator:       prompt.String(" and "),
		},
	}
	want := "1. Thin, 2. Deep dish and 3. Stuffed"
	if got := ctx.ChoiceList(); got != want {
		t.Fatalf("ChoiceList() = %q, want %q", got, want)
	}
}

func TestContextChoiceListWithoutNumbers(t *testing.T) {
	ctx := Context{
		Choices: []string{"yes", "no"},
		Options: prompt.Options{
			AllowNumberMatching: prompt.BoolFalse,
			Separator:           prompt.String(", "),
			LastSeparator:       prompt.String(" or "),
		},
	}
	if got := ctx.ChoiceList(); got != "yes or no" {
		t.Fatalf("ChoiceList() = %q", got)
	}
}

func TestContextNormalization(t *testing.T) {
	ctx := Context{
		Field: "DeliveryAddress",
		Value: "home",
		Options: prompt.Options{
			FieldCase: prompt.CaseLower,
			ValueCase: prompt.CaseInitialUpper,
		},
	}
	if got := ctx.NormalizedField(); got != "deliveryaddress" {
		t.Fatalf("NormalizedField() = %q", got)
	}
	if got := ctx.NormalizedValue(); got != "Home" {
		t.Fatalf("NormalizedValue() = %q", got)
	}
}
