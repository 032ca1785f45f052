package bot

// Target is one defender's claim on an enemy.
type Target struct {
	EnemyID    string
	DefenderID string
	Threat     float64
	LastSeen   Position
}

// TargetRegistry tracks which defender is pursuing which enemy so that no
// two defenders chase the same one. It lives on the TickContext and is
// created fresh each tick: the context constructor is the single reset
// point, there is no "first ally in the list" convention.
type TargetRegistry struct {
	byEnemy map[string]Target
}

// NewTargetRegistry returns an empty registry.
func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{byEnemy: make(map[string]Target)}
}

// Claim records defenderID as the pursuer of enemyID. It succeeds when the
// enemy is unclaimed or already held by the same defender; a claim held by a
// different defender is never overwritten.
func (r *TargetRegistry) Claim(enemyID, defenderID string, threat float64, lastSeen Position) bool {
	if t, ok := r.byEnemy[enemyID]; ok && t.DefenderID != defenderID {
		return false
	}
	r.byEnemy[enemyID] = Target{
		EnemyID:    enemyID,
		DefenderID: defenderID,
		Threat:     threat,
		LastSeen:   lastSeen,
	}
	return true
}

// Holder returns the defender currently claiming enemyID.
func (r *TargetRegistry) Holder(enemyID string) (string, bool) {
	t, ok := r.byEnemy[enemyID]
	if !ok {
		return "", false
	}
	return t.DefenderID, true
}

// Targets returns all live claims. The defender count is small; callers
// iterate, they don't mutate.
func (r *TargetRegistry) Targets() []Target {
	out := make([]Target, 0, len(r.byEnemy))
	for _, t := range r.byEnemy {
		out = append(out, t)
	}
	return out
}

// Prune drops claims on enemies that died or vanished from the snapshot.
func (r *TargetRegistry) Prune(aliveEnemyIDs map[string]bool) {
	for id := range r.byEnemy {
		if !aliveEnemyIDs[id] {
			delete(r.byEnemy, id)
		}
	}
}
