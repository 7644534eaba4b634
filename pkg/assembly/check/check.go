package check

import (
	"errors"
	"fmt"

	"github.com/ib-77/assembly/pkg/assembly"
)

type Rule func(item assembly.Item) error

// Counts checks the counters against the recipe and against each other.
func Counts(item assembly.Item) error {
	if item.PartCount != assembly.PartsPerItem {
		return fmt.Errorf("%w: %d parts, want %d", assembly.ErrCountMismatch,
			item.PartCount, assembly.PartsPerItem)
	}
	if item.PrimaryCount != assembly.PrimaryPerItem || item.SecondaryCount != assembly.SecondaryPerItem {
		return fmt.Errorf("%w: primary=%d secondary=%d, want primary=%d secondary=%d",
			assembly.ErrCountMismatch, item.PrimaryCount, item.SecondaryCount,
			assembly.PrimaryPerItem, assembly.SecondaryPerItem)
	}
	if item.PrimaryCount+item.SecondaryCount != item.PartCount {
		return fmt.Errorf("%w: primary+secondary=%d, parts=%d", assembly.ErrCountMismatch,
			item.PrimaryCount+item.SecondaryCount, item.PartCount)
	}
	return nil
}

// Sequence recounts the recorded parts and compares with the counters.
func Sequence(item assembly.Item) error {
	var primary, secondary, unknown int
	for _, k := range item.Applied() {
		switch k {
		case assembly.Primary:
			primary++
		case assembly.Secondary:
			secondary++
		default:
			unknown++
		}
	}

	if unknown > 0 {
		return fmt.Errorf("%w: %d unrecognised parts in %q", assembly.ErrSequenceMismatch, unknown, item)
	}
	if primary != item.PrimaryCount || secondary != item.SecondaryCount {
		return fmt.Errorf("%w: %q holds primary=%d secondary=%d, counters say primary=%d secondary=%d",
			assembly.ErrSequenceMismatch, item, primary, secondary, item.PrimaryCount, item.SecondaryCount)
	}
	return nil
}

// All runs rules in order and joins every defect. With breakOnError it stops
// at the first one.
func All(item assembly.Item, breakOnError bool, rules ...Rule) error {
	var errs []error
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if err := rule(item); err != nil {
			errs = append(errs, err)
			if breakOnError {
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Verify is the inspector's check for the item at index.
func Verify(index int, item assembly.Item) assembly.Report {
	if err := All(item, false, Counts, Sequence); err != nil {
		return assembly.Defective(index, item, err)
	}
	return assembly.Good(index, item)
}
