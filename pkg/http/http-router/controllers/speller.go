package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	helper "github.com/dlevanto/contextspell/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexPrefix = regexp.MustCompile("^[a-z]+$")
)

type spellAPI struct {
	spellService SpellService
	log          *zap.Logger
}

func New(spellService SpellService, log *zap.Logger) *spellAPI {
	return &spellAPI{
		spellService: spellService,
		log:          log,
	}
}

func (api *spellAPI) Routes(group *helper.RouteGroup) {
	group.POST("/correct", api.correct)
	group.POST("/correct-word", api.correctWord)
	group.POST("/evaluate", api.evaluate)
	group.POST("/generate", api.generate)
	group.POST("/autocomplete", api.autocomplete)
	group.POST("/dictionary", api.addWord)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// correctRequest model info
//
//	@Description	request body for whole-text spelling correction.
type correctRequest struct {
	Text  string  `json:"text" validate:"required"`        // text to spell-check.
	Alpha float64 `json:"alpha" validate:"min=0,max=1"`    // weight of keeping the original text; service default used when zero.
}

// correctResponse model info
//
//	@Description	response body holding the corrected text.
type correctResponse struct {
	Corrected string `json:"corrected"`
}

// correct godoc
// @Summary		correct applies noisy-channel spelling correction to the given text.
// @Description	correct applies noisy-channel spelling correction to the given text.
// @Tags			spell
// @ID correct
// @Param			body	body	correctRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/correct [post]
// @Success		200	{object}	correctResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) correct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request correctRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	corrected, err := api.spellService.Correct(request.Text, request.Alpha)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": correctResponse{Corrected: corrected}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// correctWordRequest model info
//
//	@Description	request body for single-word correction with a left context.
type correctWordRequest struct {
	Word    string  `json:"word" validate:"required"`     // word to correct.
	Context string  `json:"context"`                      // words preceding the misspelled word, space separated.
	Alpha   float64 `json:"alpha" validate:"min=0,max=1"` // weight of keeping the original word.
}

type correctWordResponse struct {
	Correction string `json:"correction"`
}

// correctWord godoc
// @Summary		correctWord corrects a single word given the words preceding it.
// @Description	correctWord corrects a single word given the words preceding it.
// @Tags			spell
// @ID correct-word
// @Param			body	body	correctWordRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/correct-word [post]
// @Success		200	{object}	correctWordResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) correctWord(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request correctWordRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	correction, err := api.spellService.CorrectWord(request.Word, request.Context, request.Alpha)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": correctWordResponse{Correction: correction}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type evaluateRequest struct {
	Text string `json:"text" validate:"required"`
}

type evaluateResponse struct {
	LogProbability float64 `json:"log_probability"`
}

// evaluate godoc
// @Summary		evaluate scores the given text under the trained language model.
// @Description	evaluate scores the given text under the trained language model and returns its log probability.
// @Tags			spell
// @ID evaluate
// @Param			body	body	evaluateRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/evaluate [post]
// @Success		200	{object}	evaluateResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) evaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request evaluateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	score, err := api.spellService.Evaluate(request.Text)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": evaluateResponse{LogProbability: score}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type generateRequest struct {
	Context string `json:"context"`                                   // optional seed text to continue from.
	Length  int    `json:"length" validate:"required,min=1,max=1000"` // number of tokens to generate, seed included.
}

type generateResponse struct {
	Text string `json:"text"`
}

// generate godoc
// @Summary		generate samples text from the trained language model.
// @Description	generate samples text from the trained language model, optionally continuing a seed context.
// @Tags			spell
// @ID generate
// @Param			body	body	generateRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/generate [post]
// @Success		200	{object}	generateResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request generateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	text, err := api.spellService.Generate(request.Context, request.Length)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": generateResponse{Text: text}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type autocompleteRequest struct {
	Prefix string `json:"prefix" validate:"required"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
}

type autocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// autocomplete godoc
// @Summary		autocomplete lists vocabulary words starting with the given prefix.
// @Description	autocomplete lists vocabulary words starting with the given prefix.
// @Tags			spell
// @ID autocomplete
// @Param			body	body	autocompleteRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocomplete [post]
// @Success		200	{object}	autocompleteResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request autocompleteRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	notMatch := regexPrefix.MatchString(request.Prefix)
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	} else if !notMatch {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: prefix must be lowercase letters"))
		return
	}

	suggestions, err := api.spellService.Autocomplete(request.Prefix, request.Limit)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": autocompleteResponse{Suggestions: suggestions}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type addWordRequest struct {
	Word string `json:"word" validate:"required"`
}

// addWord godoc
// @Summary		addWord adds a word to the custom dictionary so it is never flagged as a typo.
// @Description	addWord adds a word to the custom dictionary so it is never flagged as a typo.
// @Tags			spell
// @ID add-word
// @Param			body	body	addWordRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/dictionary [post]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) addWord(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request addWordRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	if err := api.spellService.AddWord(r.Context(), request.Word); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
