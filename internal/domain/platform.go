package domain

import (
	"strconv"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// JavaVersion is a supported Java feature release.
type JavaVersion string

const (
	Java11 JavaVersion = "11"
	Java17 JavaVersion = "17"
	Java21 JavaVersion = "21"
	Java25 JavaVersion = "25"
)

// JavaVersions lists the supported Java releases.
var JavaVersions = []JavaVersion{Java11, Java17, Java21, Java25}

func (j JavaVersion) Key() string { return string(j) }

// Feature returns the numeric feature release.
func (j JavaVersion) Feature() int {
	n, _ := strconv.Atoi(string(j))
	return n
}

// ParseJavaVersion resolves a Java version key.
func ParseJavaVersion(raw string) (JavaVersion, error) {
	return ParseKey("java-version", raw, JavaVersions)
}

// FrameworkVersion is one release of a framework together with the Java
// range it supports.
type FrameworkVersion struct {
	framework Framework
	version   string
	minJava   int
	maxJava   int
}

// Known framework releases.
var (
	SpringBoot27 = FrameworkVersion{FrameworkSpringBoot, "2.7.18", 11, 21}
	SpringBoot34 = FrameworkVersion{FrameworkSpringBoot, "3.4.5", 17, 21}
	SpringBoot35 = FrameworkVersion{FrameworkSpringBoot, "3.5.0", 17, 25}
	SpringBoot40 = FrameworkVersion{FrameworkSpringBoot, "4.0.0", 17, 25}
	Quarkus315   = FrameworkVersion{FrameworkQuarkus, "3.15.1", 17, 21}
)

// FrameworkVersions lists every known framework release.
var FrameworkVersions = []FrameworkVersion{SpringBoot27, SpringBoot34, SpringBoot35, SpringBoot40, Quarkus315}

func (v FrameworkVersion) Key() string          { return v.version }
func (v FrameworkVersion) Framework() Framework { return v.framework }
func (v FrameworkVersion) String() string       { return v.version }

// Supports reports whether the release runs on java.
func (v FrameworkVersion) Supports(java JavaVersion) bool {
	f := java.Feature()
	return f >= v.minJava && f <= v.maxJava
}

// ParseFrameworkVersion resolves a framework release key.
func ParseFrameworkVersion(raw string) (FrameworkVersion, error) {
	return ParseKey("framework-version", raw, FrameworkVersions)
}

// PlatformTarget pairs a Java release with a framework release that is
// known to run on it.
type PlatformTarget struct {
	java      JavaVersion
	framework FrameworkVersion
}

// NewPlatformTarget fails with platform-target.incompatible when the pair
// is not supported. Incompatible pairs are never coerced.
func NewPlatformTarget(java JavaVersion, framework FrameworkVersion) (PlatformTarget, error) {
	if !framework.Supports(java) {
		return PlatformTarget{}, apperr.Violation("platform-target", "incompatible", java.Key(), framework.Key())
	}
	return PlatformTarget{java: java, framework: framework}, nil
}

func (p PlatformTarget) Java() JavaVersion                  { return p.java }
func (p PlatformTarget) FrameworkVersion() FrameworkVersion { return p.framework }
