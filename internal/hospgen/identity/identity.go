// Package identity synthesizes locale-plausible Pakistani identities:
// gendered full names, CNIC-style national ID numbers, mobile phone numbers,
// emails and dates of birth. These are format generators only; values are not
// validated and duplicates are expected at scale.
package identity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/amc-dataeng/hospgen/internal/hospgen/sampler"
)

var maleNames = []string{
	"Ahmed", "Ali", "Hassan", "Hussain", "Usman", "Bilal", "Hamza", "Umar",
	"Faisal", "Imran", "Kamran", "Salman", "Asad", "Adnan", "Waqas", "Zain",
	"Tariq", "Nadeem", "Shahid", "Rashid", "Junaid", "Fahad", "Saad", "Danish",
	"Arsalan", "Awais", "Noman", "Rizwan", "Shoaib", "Zeeshan",
}

var femaleNames = []string{
	"Ayesha", "Fatima", "Zainab", "Maryam", "Khadija", "Amna", "Hira", "Sana",
	"Mahnoor", "Rabia", "Saima", "Nadia", "Farah", "Uzma", "Bushra", "Iqra",
	"Mehwish", "Sadia", "Samina", "Shazia", "Kiran", "Nimra", "Tayyaba",
	"Javeria", "Madiha", "Rimsha", "Anum", "Laiba", "Hina", "Sidra",
}

// Synthesizer draws names from the configured surname weight table and
// delegates emails and dates of birth to a faker. It is deterministic for a
// fixed rng/faker pair.
type Synthesizer struct {
	rng      *rand.Rand
	faker    *gofakeit.Faker
	surnames []sampler.Weighted[string]
}

func New(rng *rand.Rand, faker *gofakeit.Faker, surnames []sampler.Weighted[string]) *Synthesizer {
	return &Synthesizer{rng: rng, faker: faker, surnames: surnames}
}

// FullName returns a gendered given name combined with a weighted surname.
// gender is "M" or "F".
func (s *Synthesizer) FullName() (name, gender string) {
	if s.rng.Intn(2) == 0 {
		gender = "M"
		name = maleNames[s.rng.Intn(len(maleNames))]
	} else {
		gender = "F"
		name = femaleNames[s.rng.Intn(len(femaleNames))]
	}
	return name + " " + sampler.Pick(s.rng, s.surnames), gender
}

// CNIC returns a national-ID-like string in xxxxx-xxxxxxx-x grouping.
func (s *Synthesizer) CNIC() string {
	part1 := 10000 + s.rng.Intn(90000)
	part2 := 1000000 + s.rng.Intn(9000000)
	part3 := s.rng.Intn(10)
	return fmt.Sprintf("%05d-%07d-%d", part1, part2, part3)
}

// Phone returns a mobile number in one of two prefix styles,
// "+92-3xx-xxxxxxx" or "03xx-xxxxxxx".
func (s *Synthesizer) Phone() string {
	prefix := "03"
	if s.rng.Intn(2) == 0 {
		prefix = "+92-3"
	}
	prefix = fmt.Sprintf("%s%d%d", prefix, s.rng.Intn(10), s.rng.Intn(10))
	rest := 1000000 + s.rng.Intn(9000000)
	return fmt.Sprintf("%s-%d", prefix, rest)
}

// Email returns a free-mail style address.
func (s *Synthesizer) Email() string {
	return s.faker.Email()
}

// DateOfBirth returns a date giving an age between 1 and 90 years.
func (s *Synthesizer) DateOfBirth(now time.Time) time.Time {
	return s.faker.DateRange(now.AddDate(-90, 0, 0), now.AddDate(-1, 0, 0))
}
