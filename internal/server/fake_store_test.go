package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/miguel/ballotwatch/internal/db"
)

// fakeStore is an in-memory Store and DBClient used by handler unit tests.
type fakeStore struct {
	candidates   []db.Candidate
	users        map[uuid.UUID]*db.User
	usersByEmail map[string]*db.User
	achievements map[uuid.UUID][]db.AchievementRecord
	legalRecords map[uuid.UUID][]db.LegalRecord
	preferences  map[uuid.UUID]*db.PreferenceSet
	forcedErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uuid.UUID]*db.User),
		usersByEmail: make(map[string]*db.User),
		achievements: make(map[uuid.UUID][]db.AchievementRecord),
		legalRecords: make(map[uuid.UUID][]db.LegalRecord),
		preferences:  make(map[uuid.UUID]*db.PreferenceSet),
	}
}

// newTestServer wires a Server around a fake store, bypassing New so no
// database connection is needed.
func newTestServer(store *fakeStore) *Server {
	return &Server{store: store}
}

func (f *fakeStore) addCandidate(username, fullName, position, party, biography string) uuid.UUID {
	id := uuid.New()
	f.candidates = append(f.candidates, db.Candidate{
		ID:        id,
		Username:  username,
		FullName:  fullName,
		Position:  position,
		Party:     party,
		Biography: biography,
		Role:      "politician",
		CreatedAt: time.Now(),
	})
	return id
}

func (f *fakeStore) CreateCandidate(_ context.Context, c *db.Candidate) (uuid.UUID, error) {
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	c.ID = uuid.New()
	c.Role = "politician"
	f.candidates = append(f.candidates, *c)
	return c.ID, nil
}

func (f *fakeStore) GetCandidate(_ context.Context, candidateID uuid.UUID) (*db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for i := range f.candidates {
		if f.candidates[i].ID == candidateID {
			c := f.candidates[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListPoliticians(_ context.Context) ([]db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return append([]db.Candidate(nil), f.candidates...), nil
}

func (f *fakeStore) ListCandidatesByPosition(_ context.Context, position string) ([]db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var out []db.Candidate
	for _, c := range f.candidates {
		if c.Position == position {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateCandidate(_ context.Context, c *db.Candidate) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i := range f.candidates {
		if f.candidates[i].ID == c.ID {
			c.Role = f.candidates[i].Role
			c.CreatedAt = f.candidates[i].CreatedAt
			f.candidates[i] = *c
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteCandidate(_ context.Context, candidateID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i := range f.candidates {
		if f.candidates[i].ID == candidateID {
			f.candidates = append(f.candidates[:i], f.candidates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("candidate not found: %s", candidateID)
}

func (f *fakeStore) CreateAchievementRecord(_ context.Context, rec *db.AchievementRecord) (uuid.UUID, error) {
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	rec.ID = uuid.New()
	if rec.Status == "" {
		rec.Status = "pending"
	}
	f.achievements[rec.CandidateID] = append(f.achievements[rec.CandidateID], *rec)
	return rec.ID, nil
}

func (f *fakeStore) VerifyAchievementRecord(_ context.Context, recordID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for candidateID, records := range f.achievements {
		for i := range records {
			if records[i].ID == recordID {
				f.achievements[candidateID][i].Status = "verified"
				return nil
			}
		}
	}
	return fmt.Errorf("achievement record not found: %s", recordID)
}

func (f *fakeStore) ListAchievementRecords(_ context.Context, candidateID uuid.UUID) ([]db.AchievementRecord, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.achievements[candidateID], nil
}

func (f *fakeStore) CountAchievements(_ context.Context, candidateID uuid.UUID) (int, int, error) {
	if f.forcedErr != nil {
		return 0, 0, f.forcedErr
	}
	verified, pending := 0, 0
	for _, rec := range f.achievements[candidateID] {
		switch rec.Status {
		case "verified":
			verified++
		case "pending":
			pending++
		}
	}
	return verified, pending, nil
}

func (f *fakeStore) CreateLegalRecord(_ context.Context, rec *db.LegalRecord) (uuid.UUID, error) {
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	rec.ID = uuid.New()
	f.legalRecords[rec.CandidateID] = append(f.legalRecords[rec.CandidateID], *rec)
	return rec.ID, nil
}

func (f *fakeStore) VerifyLegalRecord(_ context.Context, recordID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for candidateID, records := range f.legalRecords {
		for i := range records {
			if records[i].ID == recordID {
				f.legalRecords[candidateID][i].Verified = true
				return nil
			}
		}
	}
	return fmt.Errorf("legal record not found: %s", recordID)
}

func (f *fakeStore) ListLegalRecords(_ context.Context, candidateID uuid.UUID) ([]db.LegalRecord, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.legalRecords[candidateID], nil
}

func (f *fakeStore) CountLegalRecords(_ context.Context, candidateID uuid.UUID) (int, int, error) {
	if f.forcedErr != nil {
		return 0, 0, f.forcedErr
	}
	total, verified := 0, 0
	for _, rec := range f.legalRecords[candidateID] {
		total++
		if rec.Verified {
			verified++
		}
	}
	return total, verified, nil
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, role string) (uuid.UUID, error) {
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	if role == "" {
		role = "voter"
	}
	user := &db.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users[user.ID] = user
	f.usersByEmail[email] = user
	return user.ID, nil
}

func (f *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeStore) UpdateUser(_ context.Context, user *db.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	existing, ok := f.users[user.ID]
	if !ok {
		return nil
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Role = user.Role
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	user.PasswordHash = passwordHash
	user.PasswordSet = true
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, userID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	delete(f.usersByEmail, user.Email)
	delete(f.users, userID)
	return nil
}

func (f *fakeStore) GetPreferences(_ context.Context, userID uuid.UUID) (*db.PreferenceSet, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	set, ok := f.preferences[userID]
	if !ok {
		return nil, nil
	}
	copied := *set
	return &copied, nil
}

func (f *fakeStore) SetPreferences(_ context.Context, userID uuid.UUID, preferences []string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.preferences[userID] = &db.PreferenceSet{
		UserID:      userID,
		Preferences: append([]string(nil), preferences...),
		UpdatedAt:   time.Now(),
	}
	return nil
}
