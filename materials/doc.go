// Package materials provides the structural steel grades of EN 10025-2
// with their nominal properties as dimension-checked quantities.
//
// Strength values depend on the nominal element thickness, so the
// strength accessors take the thickness as a Length quantity and pick
// the table column themselves:
//
//	steel, _ := materials.Get(materials.S235)
//	fy, _ := steel.Fyk(units.Millimeter(12)) // 235 MPa
//
// Stiffness properties (E, G, Poisson's ratio, thermal coefficient,
// unit weight) are grade-independent per EN 1993-1-1 clause 3.2.6.
package materials
