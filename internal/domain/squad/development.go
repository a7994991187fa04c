package squad

import (
	"sort"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

// loanPotentialFloor is the minimum Work Rate + Determination sum a young
// surplus player needs to be worth loaning out instead of selling.
const loanPotentialFloor = 20.0

// splitDevelopment assigns everyone without a first-squad job. A second XI
// forms from the second-team pool, or from the leftover pool when none is
// supplied, a youth XI from the young leftovers after that, and whoever
// still has no team goes on the loan or sell list: young players with
// enough drive are loaned, the rest sold.
func (o *Optimizer) splitDevelopment(slots map[string]string, eligible map[string][]string, secondTeam, leftover []model.Player) (map[string]Pick, map[string]Pick, []PlayerRef, []PlayerRef) {
	pool := secondTeam
	if len(pool) == 0 {
		pool = leftover
	}
	secondXI, _ := o.selectTeam(slots, eligible, pool)
	fillVacancies(secondXI, slots)
	rest := without(leftover, pickedIDs(secondXI))

	young := make([]model.Player, 0, len(rest))
	for _, p := range rest {
		if p.Age <= o.youthAge(p.Goalkeeper()) {
			young = append(young, p)
		}
	}
	youthXI, _ := o.selectTeam(slots, eligible, young)
	fillVacancies(youthXI, slots)

	inYouth := pickedIDs(youthXI)
	var loan, sell []PlayerRef
	for _, p := range rest {
		if _, ok := inYouth[p.ID]; ok {
			continue
		}
		ref := PlayerRef{ID: p.ID, Name: p.Name, Age: p.Age}
		drive := p.AttributeValue("Work Rate") + p.AttributeValue("Determination")
		if p.Age <= o.youthAge(p.Goalkeeper()) && drive >= loanPotentialFloor {
			loan = append(loan, ref)
		} else {
			sell = append(sell, ref)
		}
	}
	byLastName := func(refs []PlayerRef) {
		sort.Slice(refs, func(i, j int) bool {
			li, lj := lastName(refs[i].Name), lastName(refs[j].Name)
			if li != lj {
				return li < lj
			}
			return refs[i].ID < refs[j].ID
		})
	}
	byLastName(loan)
	byLastName(sell)
	return secondXI, youthXI, loan, sell
}
