package units

//go:generate go run ../cmd/unitgen generate -s quantities.yaml -o units_gen.go
