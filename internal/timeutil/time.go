package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat возвращается, когда строка времени не разбирается как "HH:MM"
var ErrFormat = errors.New("invalid time format")

// ToMinutes разбирает время вида "H:MM" или "HH:MM" в минуты с полуночи
func ToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrFormat, s)
	}

	return hour*60 + minute, nil
}

// ToTimeString форматирует минуты с полуночи как "HH:MM".
// Определена для значений в [0, 1440).
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
