//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleData holds small datasets in the layout the CLI expects.
var sampleData = map[string]string{
	"dataset.csv": `Car Make,Car Model,Price (in USD),Year,Fuel Type
Toyota,Corolla,"$20,000",2019,Petrol
Honda,Civic,"$22,500",2020,Petrol
Ford,F-150,"$35,000",2021,Diesel
Maruti,Swift,"$8,000",2018,CNG
Tesla,Model 3,"$39,990",2022,Electric
`,
	"problems-solutions.csv": `Problem,Symptom,Possible Solution,Category,Dealer
Engine overheating,Temperature gauge in the red,Check coolant level and radiator fan,Engine,Acme Motors
Engine won't start,Clicking sound when turning key,Charge or replace the battery,Electrical,Acme Motors
Brake squeal,High pitched noise when braking,Replace worn brake pads,Brakes,City Auto
Car pulls to one side,Steering drifts at speed,Check tyre pressure and alignment,Suspension,
Check engine light on,Dashboard warning light,Read fault codes with an OBD scanner,Electrical,City Auto
`,
	"parts.csv": `Car Part,Price,Supplier,Compatible Makes
Brake Pad,45,PartsCo,Toyota;Honda
Brake Disc,80,PartsCo,Toyota;Honda;Ford
Alternator,120,AutoSupply,Ford
Radiator,150,AutoSupply,Toyota;Maruti
Battery,95,VoltMax,All
`,
}

// Sample writes the sample datasets into data/, leaving existing files alone.
func Sample() error {
	if err := Init(); err != nil {
		return err
	}
	for name, body := range sampleData {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  %s exists, skipped\n", path)
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("  %s\n", path)
	}
	return nil
}
