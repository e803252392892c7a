package services

import (
	"sort"
	"strings"
	"time"

	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"

	"github.com/google/uuid"
)

// In-memory repository fakes. The service layer only sees the
// repository interfaces, so these stand in for postgres in unit tests.

// --- links ---

type fakeLinkRepo struct {
	links map[string]*models.Link
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*models.Link)}
}

func (r *fakeLinkRepo) FindByUser(userID string) ([]models.Link, error) {
	var out []models.Link
	for _, l := range r.links {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeLinkRepo) FindVisibleByUser(userID string) ([]models.Link, error) {
	all, _ := r.FindByUser(userID)
	var out []models.Link
	for _, l := range all {
		if l.Visible {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) FindByID(id string) (*models.Link, error) {
	l, ok := r.links[id]
	if !ok {
		return nil, repositories.ErrLinkNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLinkRepo) FindOwned(userID, id string) (*models.Link, error) {
	l, ok := r.links[id]
	if !ok || l.UserID != userID {
		return nil, repositories.ErrLinkNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLinkRepo) CountByUser(userID string) (int64, error) {
	var count int64
	for _, l := range r.links {
		if l.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLinkRepo) NextOrder(userID string) (int, error) {
	max := -1
	for _, l := range r.links {
		if l.UserID == userID && l.Order > max {
			max = l.Order
		}
	}
	return max + 1, nil
}

func (r *fakeLinkRepo) Create(link *models.Link) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	link.CreatedAt = time.Now()
	cp := *link
	r.links[link.ID] = &cp
	return nil
}

func (r *fakeLinkRepo) UpdateFields(userID, id string, fields map[string]interface{}) error {
	l, ok := r.links[id]
	if !ok || l.UserID != userID {
		return repositories.ErrLinkNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			l.Title = v.(string)
		case "url":
			l.URL = v.(string)
		case "icon":
			l.Icon = v.(string)
		case "visible":
			l.Visible = v.(bool)
		}
	}
	return nil
}

func (r *fakeLinkRepo) Delete(userID, id string) error {
	l, ok := r.links[id]
	if !ok || l.UserID != userID {
		return repositories.ErrLinkNotFound
	}
	delete(r.links, id)
	return nil
}

func (r *fakeLinkRepo) Reorder(userID string, assignments []repositories.OrderAssignment) error {
	// Same all-or-nothing contract as the transactional SQL version:
	// validate the whole batch before touching anything.
	for _, a := range assignments {
		l, ok := r.links[a.ID]
		if !ok || l.UserID != userID {
			return repositories.ErrLinkNotFound
		}
	}
	for _, a := range assignments {
		r.links[a.ID].Order = a.Order
	}
	return nil
}

// --- subscriptions ---

type fakeSubscriptionRepo struct {
	plans  map[string]*models.Plan
	active map[string]*models.Subscription // keyed by user id
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		plans:  make(map[string]*models.Plan),
		active: make(map[string]*models.Subscription),
	}
}

func (r *fakeSubscriptionRepo) addPlan(plan *models.Plan) *models.Plan {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	r.plans[plan.ID] = plan
	return plan
}

func (r *fakeSubscriptionRepo) FindPlans() ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range r.plans {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PriceMonthly < out[j].PriceMonthly })
	return out, nil
}

func (r *fakeSubscriptionRepo) FindPlanByID(id string) (*models.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeSubscriptionRepo) FindPlanBySlug(slug string) (*models.Plan, error) {
	for _, p := range r.plans {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrPlanNotFound
}

func (r *fakeSubscriptionRepo) CreatePlan(plan *models.Plan) error {
	r.addPlan(plan)
	return nil
}

func (r *fakeSubscriptionRepo) CountPlans() (int64, error) {
	return int64(len(r.plans)), nil
}

func (r *fakeSubscriptionRepo) FindActiveByUser(userID string) (*models.Subscription, error) {
	sub, ok := r.active[userID]
	if !ok || sub.Status != models.SubscriptionStatusActive {
		return nil, repositories.ErrNoActiveSubscription
	}
	cp := *sub
	if p, ok := r.plans[sub.PlanID]; ok {
		cp.Plan = *p
	}
	return &cp, nil
}

func (r *fakeSubscriptionRepo) Activate(data repositories.ActivationData) (*models.Subscription, error) {
	now := time.Now()
	if old, ok := r.active[data.UserID]; ok {
		old.Status = models.SubscriptionStatusCancelled
		old.CancelledAt = &now
	}
	sub := &models.Subscription{
		UserID:             data.UserID,
		PlanID:             data.PlanID,
		Status:             models.SubscriptionStatusActive,
		BillingCycle:       data.BillingCycle,
		CurrentPeriodStart: data.PeriodStart,
		CurrentPeriodEnd:   data.PeriodEnd,
	}
	sub.ID = uuid.NewString()
	r.active[data.UserID] = sub
	cp := *sub
	if p, ok := r.plans[sub.PlanID]; ok {
		cp.Plan = *p
	}
	return &cp, nil
}

func (r *fakeSubscriptionRepo) Cancel(userID string) error {
	sub, ok := r.active[userID]
	if !ok || sub.Status != models.SubscriptionStatusActive {
		return repositories.ErrNoActiveSubscription
	}
	now := time.Now()
	sub.Status = models.SubscriptionStatusCancelled
	sub.CancelledAt = &now
	return nil
}

// --- analytics ---

type fakeAnalyticsRepo struct {
	events []models.ClickEvent
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{}
}

func (r *fakeAnalyticsRepo) CreateEvent(event *models.ClickEvent) error {
	if event.ClickedAt.IsZero() {
		event.ClickedAt = time.Now()
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAnalyticsRepo) CountByUser(userID string) (int64, error) {
	var count int64
	for _, e := range r.events {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAnalyticsRepo) CountToday(userID string) (int64, error) {
	var count int64
	y, m, d := time.Now().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	for _, e := range r.events {
		if e.UserID == userID && !e.ClickedAt.Before(midnight) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAnalyticsRepo) ClicksPerLink(userID string) ([]repositories.LinkClicks, error) {
	counts := map[string]int64{}
	for _, e := range r.events {
		if e.UserID == userID {
			counts[e.LinkID]++
		}
	}
	var out []repositories.LinkClicks
	for id, n := range counts {
		out = append(out, repositories.LinkClicks{LinkID: id, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Clicks > out[j].Clicks })
	return out, nil
}

func (r *fakeAnalyticsRepo) ClicksOverTime(userID string, days int) ([]repositories.DateClicks, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	counts := map[string]int64{}
	for _, e := range r.events {
		if e.UserID == userID && e.ClickedAt.After(cutoff) {
			counts[e.ClickedAt.Format("2006-01-02")]++
		}
	}
	var out []repositories.DateClicks
	for d, n := range counts {
		out = append(out, repositories.DateClicks{Date: d, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeAnalyticsRepo) DeviceStats(userID string) ([]repositories.ValueClicks, error) {
	return r.groupBy(userID, func(e models.ClickEvent) string { return e.Device }, 0)
}

func (r *fakeAnalyticsRepo) BrowserStats(userID string) ([]repositories.ValueClicks, error) {
	return r.groupBy(userID, func(e models.ClickEvent) string { return e.Browser }, 0)
}

func (r *fakeAnalyticsRepo) ReferrerStats(userID string, limit int) ([]repositories.ValueClicks, error) {
	return r.groupBy(userID, func(e models.ClickEvent) string { return e.Referrer }, limit)
}

func (r *fakeAnalyticsRepo) groupBy(userID string, key func(models.ClickEvent) string, limit int) ([]repositories.ValueClicks, error) {
	counts := map[string]int64{}
	for _, e := range r.events {
		if e.UserID == userID && strings.TrimSpace(key(e)) != "" {
			counts[key(e)]++
		}
	}
	var out []repositories.ValueClicks
	for v, n := range counts {
		out = append(out, repositories.ValueClicks{Value: v, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Clicks > out[j].Clicks })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) addUser(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Theme == "" {
		user.Theme = models.DefaultThemeKey
	}
	if user.ButtonStyle == "" {
		user.ButtonStyle = models.ButtonStyleRounded
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username != nil && *u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.addUser(user)
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) IsUsernameTaken(username, excludeUserID string) (bool, error) {
	for _, u := range r.users {
		if u.ID == excludeUserID {
			continue
		}
		if u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ResetTheme(userID, theme string) error {
	if u, ok := r.users[userID]; ok {
		u.Theme = theme
	}
	return nil
}

// --- themes ---

type fakeThemeRepo struct {
	themes map[string]*models.CustomTheme
	users  *fakeUserRepo
}

func newFakeThemeRepo(users *fakeUserRepo) *fakeThemeRepo {
	return &fakeThemeRepo{themes: make(map[string]*models.CustomTheme), users: users}
}

func (r *fakeThemeRepo) addTheme(theme *models.CustomTheme) *models.CustomTheme {
	if theme.ID == "" {
		theme.ID = uuid.NewString()
	}
	theme.CreatedAt = time.Now()
	r.themes[theme.ID] = theme
	return theme
}

func (r *fakeThemeRepo) FindByUser(userID string) ([]models.CustomTheme, error) {
	var out []models.CustomTheme
	for _, th := range r.themes {
		if th.UserID == userID {
			out = append(out, *th)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeThemeRepo) FindByID(id string) (*models.CustomTheme, error) {
	th, ok := r.themes[id]
	if !ok {
		return nil, repositories.ErrThemeNotFound
	}
	cp := *th
	return &cp, nil
}

func (r *fakeThemeRepo) FindOwned(userID, id string) (*models.CustomTheme, error) {
	th, ok := r.themes[id]
	if !ok || th.UserID != userID {
		return nil, repositories.ErrThemeNotFound
	}
	cp := *th
	return &cp, nil
}

func (r *fakeThemeRepo) Create(theme *models.CustomTheme) error {
	r.addTheme(theme)
	return nil
}

func (r *fakeThemeRepo) Update(theme *models.CustomTheme) error {
	if _, ok := r.themes[theme.ID]; !ok {
		return repositories.ErrThemeNotFound
	}
	cp := *theme
	r.themes[theme.ID] = &cp
	return nil
}

func (r *fakeThemeRepo) DeleteWithFallback(theme *models.CustomTheme, fallbackKey string) error {
	existing, ok := r.themes[theme.ID]
	if !ok || existing.UserID != theme.UserID {
		return repositories.ErrThemeNotFound
	}
	delete(r.themes, theme.ID)
	if r.users != nil {
		if u, ok := r.users.users[theme.UserID]; ok && u.Theme == theme.ID {
			u.Theme = fallbackKey
		}
	}
	return nil
}

// fixedEntitlements is an EntitlementResolver returning a constant.
type fixedEntitlements struct {
	linkLimit        int
	analyticsEnabled bool
	err              error
}

func (f *fixedEntitlements) ResolveEntitlements(userID string) (dto.Entitlements, error) {
	if f.err != nil {
		return dto.Entitlements{}, f.err
	}
	return dto.Entitlements{
		LinkLimit:        f.linkLimit,
		AnalyticsEnabled: f.analyticsEnabled,
	}, nil
}
