package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ateliedalu/caixa/internal/adapter/http/dto"
	"github.com/ateliedalu/caixa/internal/domain"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestTruncate_CutsOnRuneBoundary(t *testing.T) {
	got := truncate("Confecção de vestidos sob medida", 12)
	if got != "Confecção..." {
		t.Fatalf("expected cut after 9 runes, got %q", got)
	}
	if !strings.ContainsRune(got, 'ç') {
		t.Fatalf("expected accented rune intact, got %q", got)
	}
}

func TestFormatEntryLine(t *testing.T) {
	line := formatEntryLine(&dto.EntryResponse{
		Date:        domain.ParseDate("2024-01-15"),
		Amount:      domain.AmountFromFloat(150),
		Direction:   "saida",
		Description: "Compra: Malharia Sul - Pix",
		Balance:     domain.NewAmount(decimal.NewFromInt(-150)),
	})

	if !strings.HasPrefix(line, "2024-01-15") {
		t.Fatalf("expected line to start with the date, got %q", line)
	}
	if !strings.Contains(line, "R$") {
		t.Fatalf("expected BRL amounts, got %q", line)
	}
	if !strings.Contains(line, "Compra: Malharia Sul - Pix") {
		t.Fatalf("expected description, got %q", line)
	}
}

func TestFormatEntryLine_MissingDate(t *testing.T) {
	line := formatEntryLine(&dto.EntryResponse{
		Amount:    domain.AmountFromFloat(10),
		Direction: "entrada",
	})

	if strings.HasPrefix(line, "0001") {
		t.Fatalf("zero date must not render as year 1, got %q", line)
	}
}
