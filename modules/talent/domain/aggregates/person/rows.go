package person

// Rows is one record flattened into table rows. Dependent rows carry no
// person id; the store resolves it from Person.Seq.
type Rows struct {
	Person    PersonRow
	Basic     BasicRow
	Work      WorkRow
	Education EducationRow
	Abilities []AbilityRow
}

type PersonRow struct {
	Seq    int64
	Name   Scalar
	Gender Scalar
	Age    Scalar
}

type BasicRow struct {
	Hobby       Scalar
	Personality Scalar
	Family      Scalar
}

type WorkRow struct {
	YearsInIndustry Scalar
	JobHops         Scalar
	PreviousJob     Scalar
}

type EducationRow struct {
	Degree Scalar
	School Scalar
	Major  Scalar
}

type AbilityRow struct {
	Category  Category
	Ability   string
	LevelText *string
	Score     *float64
}
