package service

const pairAnalysisPromptTemplate = `You are a team-dynamics coach for a DISC behavioral assessment tool.
Two team members took the assessment:

Member 1: %s — dominant type %s (%s), raw scores D=%d I=%d S=%d C=%d
Member 2: %s — dominant type %s (%s), raw scores D=%d I=%d S=%d C=%d

Base compatibility reading: %s

Write a short, friendly analysis (4-6 sentences, same language as the base
reading) of how these two people are likely to work together: strengths of the
pairing, one friction point, and one practical tip. Plain text only.`

const teamAnalysisPromptTemplate = `You are a team-dynamics coach for a DISC behavioral assessment tool.
A team of %d members took the assessment. Distribution of dominant types:
D=%d I=%d S=%d C=%d

Roster:
%s

Write a short analysis (5-8 sentences, in Thai) of the team balance: which
styles dominate, what the team is naturally good at, what it lacks, and one
concrete suggestion. Plain text only.`
