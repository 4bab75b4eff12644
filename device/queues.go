package device

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// QueueFamilyIndices holds the queue family chosen for each role. A value of -1 means no
// family has been assigned.
type QueueFamilyIndices struct {
	Graphics int
	Present  int
	Transfer int
}

// Family returns the family index assigned to a role
func (i QueueFamilyIndices) Family(role QueueRole) int {
	switch role {
	case QueueGraphics:
		return i.Graphics
	case QueuePresent:
		return i.Present
	case QueueTransfer:
		return i.Transfer
	default:
		return -1
	}
}

func (i QueueFamilyIndices) complete() bool {
	return i.Graphics >= 0 && i.Present >= 0 && i.Transfer >= 0
}

// UniqueFamilies lists the distinct families in queue creation order: graphics, then transfer if it
// is distinct, then present if it is distinct from both.
func (i QueueFamilyIndices) UniqueFamilies() []int {
	families := []int{i.Graphics}
	if i.Transfer != i.Graphics {
		families = append(families, i.Transfer)
	}
	if i.Present != i.Graphics && i.Present != i.Transfer {
		families = append(families, i.Present)
	}
	return families
}

// SelectQueueFamilies assigns queue families to roles in a single first-match pass. familyFlags holds
// the QueueFlags of each family in enumeration order and presentSupport whether that family can present
// to the target surface.
//
// The first graphics family becomes the graphics queue and, if it can present, the present queue as
// well. Otherwise the first family that can present is used. The transfer queue is the first family
// that supports transfer but neither graphics nor compute, and falls back to the graphics family.
func SelectQueueFamilies(familyFlags []core1_0.QueueFlags, presentSupport []bool) (QueueFamilyIndices, error) {
	if len(familyFlags) != len(presentSupport) {
		return QueueFamilyIndices{}, errors.Newf("received %d queue families but %d present support values", len(familyFlags), len(presentSupport))
	}

	indices := QueueFamilyIndices{Graphics: -1, Present: -1, Transfer: -1}

	for family, flags := range familyFlags {
		if indices.Graphics < 0 && flags&core1_0.QueueGraphics != 0 {
			indices.Graphics = family
			if presentSupport[family] {
				indices.Present = family
			}
		} else if indices.Present < 0 && presentSupport[family] {
			indices.Present = family
		}

		if indices.Transfer < 0 && flags&core1_0.QueueTransfer != 0 &&
			flags&(core1_0.QueueGraphics|core1_0.QueueCompute) == 0 {
			indices.Transfer = family
		}

		if indices.complete() {
			break
		}
	}

	if indices.Graphics < 0 {
		return indices, ErrNoGraphicsQueue
	}

	if indices.Transfer < 0 {
		indices.Transfer = indices.Graphics
	}

	if indices.Present < 0 {
		return indices, ErrNoPresentQueue
	}

	return indices, nil
}
