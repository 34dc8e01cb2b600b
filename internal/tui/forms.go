package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/tui/icons"

	"github.com/charmbracelet/huh"
)

// addValues collects raw form input for a new goal.
type addValues struct {
	name    string
	target  string
	icon    string
	color   string
	date    string
	initial string
}

// amountValues collects raw form input for a deposit or withdrawal.
type amountValues struct {
	amount string
	note   string
}

func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre").
				Value(&vals.name).
				Validate(validateName),
			huh.NewInput().
				Title("Monto objetivo").
				Description("En pesos. Vacío = sin límite").
				Value(&vals.target).
				Validate(validateOptionalAmount),
			huh.NewSelect[string]().
				Title("Ícono").
				Options(iconOptions()...).
				Value(&vals.icon),
			huh.NewInput().
				Title("Color").
				Description("#rrggbb, vacío usa el azul del tema").
				Value(&vals.color),
			huh.NewInput().
				Title("Fecha límite").
				Description("DD-MM-AAAA, opcional").
				Value(&vals.date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Monto inicial").
				Description("Opcional").
				Value(&vals.initial).
				Validate(validateOptionalAmount),
		),
	)
}

func newAmountForm(vals *amountValues, goalName string, withdrawing bool) *huh.Form {
	title := "Abonar a " + goalName
	if withdrawing {
		title = "Retirar de " + goalName
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Monto en pesos").
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Nota").
				Description("Opcional").
				Value(&vals.note),
		),
	)
}

func newConfirmForm(confirmed *bool, goalName string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("¿Eliminar la meta %q?", goalName)).
				Description("Se pierde también su historial de abonos.").
				Affirmative("Eliminar").
				Negative("Cancelar").
				Value(confirmed),
		),
	)
}

func iconOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(por defecto) "+string(icons.Default), "")}
	for _, name := range icons.Names() {
		opts = append(opts, huh.NewOption(name+" "+string(icons.Lookup(name)), name))
	}
	return opts
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("el nombre no puede estar vacío")
	}
	return nil
}

func validateAmount(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return errors.New("ingresa un monto positivo")
	}
	return nil
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateAmount(s)
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := format.ParseDate(s); err != nil {
		return errors.New("formato esperado: DD-MM-AAAA")
	}
	return nil
}

// toGoal builds the goal from validated form input.
func (v addValues) toGoal() (model.Goal, error) {
	g := model.NewGoal(strings.TrimSpace(v.name))
	g.Icon = v.icon
	g.Color = strings.TrimSpace(v.color)

	if s := strings.TrimSpace(v.target); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return model.Goal{}, fmt.Errorf("monto objetivo inválido: %w", err)
		}
		g.TargetAmount = &n
	}
	if s := strings.TrimSpace(v.initial); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return model.Goal{}, fmt.Errorf("monto inicial inválido: %w", err)
		}
		g.CurrentAmount = n
	}
	if s := strings.TrimSpace(v.date); s != "" {
		d, err := format.ParseDate(s)
		if err != nil {
			return model.Goal{}, err
		}
		g.TargetDate = &d
	}

	if err := model.Validate(g); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// parseAmount returns the entered amount, always positive.
func (v amountValues) parseAmount() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v.amount), 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.New("monto inválido")
	}
	return n, nil
}
