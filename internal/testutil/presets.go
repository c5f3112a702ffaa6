package testutil

// WithDemographicsTestData adds a small demographics registry spanning all
// three data formats, with tags for filter tests.
func (b *Builder) WithDemographicsTestData() *Builder {
	return b.
		WithStandard("genders",
			Version("2.1"), Maintainer("Identity WG"), Title("Gender Codes"),
			Description("Administrative gender codes."),
			Tags("demographics", "codes"), LastUpdated("2024-03-15"),
			Records(
				Record(Field("code", "F"), Field("label", "Female")),
				Record(Field("code", "M"), Field("label", "Male")),
				Record(Field("code", "X"), Field("label", "Unspecified")))).
		WithStandard("marital-statuses",
			Version("1.4"), Maintainer("Identity WG"), Title("Marital Statuses"),
			Format("json"), Tags("demographics"),
			Records(
				Record(Field("code", "S"), Field("label", "Single")),
				Record(Field("code", "M"), Field("label", "Married")),
				Record(Field("code", "W"), Field("label", "Widowed")))).
		WithStandard("regions",
			Version("3.0"), Maintainer("Geo WG"), Title("Region Codes"),
			Format("xml"), Tags("geography", "codes"),
			Records(
				Record(Field("code", "N"), Field("name", "North")),
				Record(Field("code", "S"), Field("name", "South"))))
}

// WithFailureTestData adds standards that fail to load in different ways:
// a missing data file, a malformed document, and an unsupported format.
// One broken standard must never take down the rest of a registry built
// alongside these.
func (b *Builder) WithFailureTestData() *Builder {
	return b.
		WithStandard("missing",
			Title("Missing Data File"), NoData()).
		WithStandard("malformed",
			Title("Malformed Document"), Format("json"),
			RawData(`{"code": "A",`)).
		WithStandard("exotic",
			Title("Unsupported Format"), Format("toml"),
			RawData("code = \"A\"\n"))
}
