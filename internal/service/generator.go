package service

import (
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *generator.Generator
	defaultLength int
}

// NewGeneratorService creates a GeneratorService. A nil gen uses the default
// random source; defaultLength is applied when a request omits the length.
func NewGeneratorService(gen *generator.Generator, defaultLength int) *GeneratorService {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &GeneratorService{
		gen:           gen,
		defaultLength: generator.ClampLength(defaultLength),
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := s.Options(req)
	if err := opts.Validate(); err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	slog.Debug("password generated",
		"length", opts.Length,
		"digits", opts.Digits,
		"uppercase", opts.Uppercase,
		"symbols", opts.Symbols,
	)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// Options converts a request into generator options, filling in defaults.
func (s *GeneratorService) Options(req model.GenerateRequest) generator.Options {
	opts := generator.Options{
		Length:    req.Length,
		Digits:    boolOrDefault(req.Digits, false),
		Uppercase: boolOrDefault(req.Uppercase, false),
		Symbols:   boolOrDefault(req.Symbols, false),
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}
	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
