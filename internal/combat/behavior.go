package combat

import (
	"fmt"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/world"
)

// FeelSpace performs the unit's feel ability and returns the space.
func FeelSpace(u *entity.Unit, dir world.Direction) (world.Space, error) {
	res, err := u.Perform(AbilityFeel, dir)
	if err != nil {
		return world.Space{}, err
	}
	space, ok := res.(world.Space)
	if !ok {
		return world.Space{}, fmt.Errorf("%s: feel returned %T", u, res)
	}
	return space, nil
}

// Melee attacks the warrior if it is adjacent, checking relative
// directions clockwise from forward. The unit needs feel and attack.
func Melee(u *entity.Unit) error {
	for _, dir := range world.RelativeDirections {
		space, err := FeelSpace(u, dir)
		if err != nil {
			return err
		}
		if space.IsPlayer() {
			_, err := u.Perform(AbilityAttack, dir)
			return err
		}
	}
	return nil
}

// Stationary does nothing.
func Stationary(*entity.Unit) error {
	return nil
}
