package engine

import "market-tycoon/internal/models"

// maybeStartStory rolls the daily story gate. A new story may begin only when
// none is active, no chain resolved today, and the bounded daily chance
// passes; its opening stage is always a plain rumor stage, which fires
// immediately.
func (e *Engine) maybeStartStory(s *State, chainResolved, storyFired bool, effects map[string]float64) {
	if s.ActiveStory != nil || chainResolved || storyFired {
		return
	}
	if e.rng.Float64() >= e.cfg.Narrative.StoryChance {
		return
	}

	blocked := e.blockedCategories(s)
	var pool []models.Story
	for _, st := range e.catalog.Stories {
		if s.UsedStories[st.ID] || blocked[st.Category] {
			continue
		}
		if e.conflictsWithMood(s, st.Stages[0].Effects) {
			continue
		}
		pool = append(pool, st)
	}
	if len(pool) == 0 {
		return
	}

	st := pool[e.rng.Intn(len(pool))]
	s.ActiveStory = &models.ActiveStory{
		StoryID:     st.ID,
		Category:    st.Category,
		Stage:       1,
		AdvancedDay: s.Day,
	}
	e.playStage(s, st, st.Stages[0], effects)
}

// advanceStory moves the active story exactly one stage forward. Reports
// whether a stage fired today.
func (e *Engine) advanceStory(s *State, effects map[string]float64) bool {
	if s.ActiveStory == nil {
		return false
	}

	st, ok := e.catalog.StoryByID(s.ActiveStory.StoryID)
	if !ok || s.ActiveStory.Stage >= len(st.Stages) {
		s.ActiveStory = nil
		return false
	}

	stage := st.Stages[s.ActiveStory.Stage]
	s.ActiveStory.AdvancedDay = s.Day

	if len(stage.Branches) == 0 {
		e.playStage(s, st, stage, effects)
		s.ActiveStory.Stage++
		if s.ActiveStory.Stage >= len(st.Stages) {
			e.finishStory(s, st)
		}
		return true
	}

	branch := e.rollBranch(stage.Branches)
	mergeEffects(effects, branch.Effects)
	s.addNews(models.NewsItem{
		Kind:     models.NewsStory,
		Category: st.Category,
		Headline: branch.Headline,
		EffectID: st.ID,
		Effects:  branch.Effects,
	})
	e.registerMoods(s, branch.Effects)

	if branch.Continues && s.ActiveStory.Stage+1 < len(st.Stages) {
		s.ActiveStory.Stage++
		return true
	}
	e.finishStory(s, st)
	return true
}

// playStage emits a deterministic stage's headline and effects.
func (e *Engine) playStage(s *State, st models.Story, stage models.StoryStage, effects map[string]float64) {
	mergeEffects(effects, stage.Effects)
	s.addNews(models.NewsItem{
		Kind:     models.NewsStory,
		Category: st.Category,
		Headline: stage.Headline,
		EffectID: st.ID,
		Effects:  stage.Effects,
	})
	e.registerMoods(s, stage.Effects)
}

// finishStory retires the active story. The id enters the used set only now,
// at terminal resolution.
func (e *Engine) finishStory(s *State, st models.Story) {
	s.UsedStories[st.ID] = true
	s.ActiveStory = nil
}

// rollBranch picks a branch by cumulative weight.
func (e *Engine) rollBranch(branches []models.StoryBranch) models.StoryBranch {
	weights := make([]float64, len(branches))
	for i, b := range branches {
		weights[i] = b.Weight
	}
	idx := weightedIndex(e.rng, weights)
	if idx < 0 {
		idx = 0
	}
	return branches[idx]
}
