/*Package sanitize checks parsed MOL2 records with a chemistry toolkit.

A Toolkit parses the text of a record into a structure object, recomputes its
property cache and runs sanitization operations on it. The Native toolkit works on
*chem.Molecule and performs every operation except kekulization and aromaticity
perception.

The Driver runs, for each record, a tolerant property cache update followed by
Sanitize with every operation but kekulization and aromaticity perception. Validate
stops at the first record that fails; ValidateEach checks every record and returns a
Report. ProcessFile and Process run the whole pipeline on a MOL2 file: segmentation,
parsing and validation.*/
package sanitize
