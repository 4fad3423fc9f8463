package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator is the shared validator instance.
var Validator *validator.Validate

// Trans renders validation messages in Brazilian Portuguese.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"username":         "usuário",
	"password":         "senha",
	"current_password": "senha atual",
	"new_password":     "nova senha",
	"session_type":     "tipo de sessão",
	"lesson_id":        "lição",
	"item_id":          "item",
	"notes":            "anotações",
	"title":            "título",
	"title_prefix":     "prefixo do título",
	"name":             "nome",
	"author":           "autor",
	"durations":        "durações",
	"time_sec":         "tempo",
}

func init() {
	Validator = validator.New()

	// Report field names by their json tag, not the Go identifier.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator not found")
	}

	if err := pt_br_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	translateField := func(fe validator.FieldError) string {
		if translated, ok := fieldNameTranslations[fe.Field()]; ok {
			return translated
		}
		return fe.Field()
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe))
			return t
		})
	}

	registerTranslation("required", "{0} é obrigatório.")

	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0} deve ter no mínimo {1} caracteres.", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("min", translateField(fe), fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0} deve ter no máximo {1} caracteres.", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", translateField(fe), fe.Param())
		return t
	})
}
